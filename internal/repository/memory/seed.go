package memory

import "github.com/JdarlingGT/PortfolioJdbuild/internal/domain/models"

func str(s string) *string { return &s }

// seedDesignProjects is the fixed catalog loaded at startup, in the order it
// is rendered on the creative-design page.
var seedDesignProjects = []models.CreateDesignProjectRequest{
	{
		Title:       "Evening of Promise Gala",
		Description: str("Professional event banner design for American Lung Association's annual fundraising gala featuring elegant typography and celestial theme."),
		Category:    "Marketing Materials",
		Year:        2018,
		ImageURL:    "/attached_assets/evening-of-promise-banner.jpg",
		Tools:       []string{"Photoshop", "Illustrator"},
		Featured:    true,
		ClientName:  str("American Lung Association - Indiana"),
		ProjectType: str("Event Marketing"),
	},
	{
		Title:       "TBM Law Firm Logo",
		Description: str("Professional legal practice branding with sophisticated geometric design and emphasis on experience and effectiveness."),
		Category:    "Logo Design",
		Year:        2019,
		ImageURL:    "/attached_assets/tbm-logo.png",
		Tools:       []string{"Illustrator", "InDesign"},
		Featured:    true,
		ClientName:  str("TBM Legal"),
		ProjectType: str("Brand Identity"),
	},
	{
		Title:       "Russell Painting Company",
		Description: str("Dynamic logo design featuring flowing paint brush strokes with vibrant color gradients representing creativity and quality craftsmanship."),
		Category:    "Logo Design",
		Year:        2020,
		ImageURL:    "/attached_assets/rpc-logo.png",
		Tools:       []string{"Illustrator", "Photoshop"},
		Featured:    true,
		ClientName:  str("Russell Painting Company"),
		ProjectType: str("Brand Identity"),
	},
	{
		Title:       "Perpetual Movement Coaching",
		Description: str("Minimalist arrow-based logo design symbolizing forward motion and progress for fitness and life coaching services."),
		Category:    "Logo Design",
		Year:        2019,
		ImageURL:    "/attached_assets/perpetual-movement-logo.png",
		Tools:       []string{"Illustrator"},
		ClientName:  str("Perpetual Movement Coaching"),
		ProjectType: str("Brand Identity"),
	},
	{
		Title:       "School 80 Condominiums",
		Description: str("Distinctive residential branding featuring owl mascot design representing wisdom and community for luxury condominium development."),
		Category:    "Logo Design",
		Year:        2018,
		ImageURL:    "/attached_assets/school-80-logo.png",
		Tools:       []string{"Illustrator", "Photoshop"},
		ClientName:  str("School 80 Development"),
		ProjectType: str("Real Estate Branding"),
	},
	{
		Title:       "Installation Nation 2018",
		Description: str("Event branding for installer conference featuring natural tree imagery and corporate partnership acknowledgment."),
		Category:    "Branding",
		Year:        2018,
		ImageURL:    "/attached_assets/installation-nation-logo.png",
		Tools:       []string{"Illustrator", "Photoshop"},
		ClientName:  str("Primary Colours"),
		ProjectType: str("Event Branding"),
	},
	{
		Title:       "Riley Bennett Egloff Racing",
		Description: str("High-energy racing logo design featuring checkered flags, wings, and Indianapolis 500 theming for professional racing team."),
		Category:    "Logo Design",
		Year:        2016,
		ImageURL:    "/attached_assets/rbe-indy-500.png",
		Tools:       []string{"Illustrator", "Photoshop"},
		Featured:    true,
		ClientName:  str("Riley Bennett Egloff"),
		ProjectType: str("Sports Branding"),
	},
	{
		Title:       "Hoosier Boy Barbershop",
		Description: str("Traditional barbershop branding featuring Indiana cardinal bird with classic barber pole elements in vintage-inspired design."),
		Category:    "Logo Design",
		Year:        2017,
		ImageURL:    "/attached_assets/hoosier-boy-logo.png",
		Tools:       []string{"Illustrator"},
		ClientName:  str("Hoosier Boy Barbershop"),
		ProjectType: str("Retail Branding"),
	},
	{
		Title:       "Be Free Home and Life",
		Description: str("Modern lifestyle brand identity with clean typography and vibrant color blocking for home and life consulting services."),
		Category:    "Branding",
		Year:        2020,
		ImageURL:    "/attached_assets/be-free-monogram.png",
		Tools:       []string{"Illustrator", "InDesign"},
		Featured:    true,
		ClientName:  str("Be Free Consulting"),
		ProjectType: str("Lifestyle Branding"),
	},
	{
		Title:       "Circle City Kicks",
		Description: str("Urban sneaker marketplace branding featuring Indianapolis skyline silhouette with dynamic typography and street culture aesthetics."),
		Category:    "Logo Design",
		Year:        2019,
		ImageURL:    "/attached_assets/circle-city-kicks-logo.jpg",
		Tools:       []string{"Illustrator", "Photoshop"},
		ClientName:  str("Circle City Kicks"),
		ProjectType: str("Retail Branding"),
	},
	{
		Title:       "Herb's Secret Rub",
		Description: str("Bold culinary branding with portrait integration and flame effects for specialty spice and seasoning products."),
		Category:    "Digital Graphics",
		Year:        2018,
		ImageURL:    "/attached_assets/herbs-rub.png",
		Tools:       []string{"Photoshop", "Illustrator"},
		ClientName:  str("Herb's Kitchen"),
		ProjectType: str("Product Branding"),
	},
	{
		Title:       "Behr Pet Essentials",
		Description: str("Caring pet services logo combining dog and cat silhouettes with protective hands design emphasizing trust and compassion."),
		Category:    "Logo Design",
		Year:        2020,
		ImageURL:    "/attached_assets/behr-pet-logo.png",
		Tools:       []string{"Illustrator"},
		ClientName:  str("Behr Pet Essentials"),
		ProjectType: str("Pet Services Branding"),
	},
	{
		Title:       "Taco Pattern Design",
		Description: str("Playful repeating pattern design featuring stylized tacos for packaging, textile, or digital applications."),
		Category:    "Digital Graphics",
		Year:        2019,
		ImageURL:    "/attached_assets/taco-pattern.png",
		Tools:       []string{"Illustrator", "Photoshop"},
		ClientName:  str("Personal Project"),
		ProjectType: str("Pattern Design"),
	},
}
