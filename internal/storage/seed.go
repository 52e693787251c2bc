package storage

import (
	"time"

	"github.com/fundlift/fundlift/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedProjects is the static dataset the catalog starts from. It is held
// only in memory and discarded at process end.
func SeedProjects() []*domain.Project {
	return []*domain.Project{
		{
			ID:          "1",
			Title:       "Clean Water Initiative",
			Category:    domain.CategoryHealthcare,
			Description: "Bringing clean and safe drinking water to rural communities through sustainable well construction and water purification systems.",
			Image:       "/water-project.jpg",
			FundingGoal: 50000,
			Raised:      38000,
			Budget: []domain.BudgetItem{
				{Category: "Well construction", Amount: 30000},
				{Category: "Purification systems", Amount: 12000},
				{Category: "Community training", Amount: 8000},
			},
			Donors: 842,
			Milestones: []string{
				"Site surveys completed across 12 villages",
				"First 5 wells constructed and operational",
				"Water quality monitoring program launched",
			},
			Creator:     "Amara Okafor",
			CreatorID:   "creator-1",
			CreatedDate: date(2024, time.November, 2),
			Status:      domain.StatusActive,
			DaysLeft:    18,
		},
		{
			ID:          "2",
			Title:       "Youth Tech Education",
			Category:    domain.CategoryEducation,
			Description: "Equipping underserved youth with coding skills, laptops, and mentorship to open doors into technology careers.",
			Image:       "/tech-education.jpg",
			FundingGoal: 30000,
			Raised:      28500,
			Budget: []domain.BudgetItem{
				{Category: "Laptops", Amount: 18000},
				{Category: "Instructors", Amount: 9000},
				{Category: "Venue", Amount: 3000},
			},
			Donors: 617,
			Milestones: []string{
				"Curriculum designed with local employers",
				"First cohort of 40 students enrolled",
				"Job placement partnerships signed",
			},
			Creator:     "Luis Hernandez",
			CreatorID:   "creator-2",
			CreatedDate: date(2024, time.December, 10),
			Status:      domain.StatusActive,
			DaysLeft:    32,
		},
		{
			ID:          "3",
			Title:       "Urban Garden Project",
			Category:    domain.CategoryEnvironment,
			Description: "Converting vacant city lots into community gardens that grow fresh produce and bring neighbors together.",
			Image:       "/garden-project.jpg",
			FundingGoal: 15000,
			Raised:      14200,
			Budget: []domain.BudgetItem{
				{Category: "Soil and seeds", Amount: 6000},
				{Category: "Tools", Amount: 4000},
				{Category: "Irrigation", Amount: 5000},
			},
			Donors: 389,
			Milestones: []string{
				"Three lots secured from the city",
				"Raised beds built by volunteers",
				"First harvest shared with food banks",
			},
			Creator:     "Amara Okafor",
			CreatorID:   "creator-1",
			CreatedDate: date(2025, time.January, 5),
			Status:      domain.StatusActive,
			DaysLeft:    44,
		},
		{
			ID:          "4",
			Title:       "Mobile Health Clinic",
			Category:    domain.CategoryHealthcare,
			Description: "A van-based clinic delivering checkups, vaccinations, and health screenings to neighborhoods without nearby care.",
			Image:       "/mobile-clinic.jpg",
			FundingGoal: 80000,
			Raised:      0,
			Budget: []domain.BudgetItem{
				{Category: "Vehicle", Amount: 55000},
				{Category: "Medical equipment", Amount: 20000},
				{Category: "Licensing", Amount: 5000},
			},
			Donors: 0,
			Milestones: []string{
				"Vehicle purchased and outfitted",
				"Medical staff recruited",
				"First neighborhood route launched",
			},
			Creator:     "Priya Raman",
			CreatorID:   "creator-3",
			CreatedDate: date(2025, time.February, 14),
			Status:      domain.StatusAwaitingVerification,
			DaysLeft:    30,
		},
		{
			ID:          "5",
			Title:       "Tech for Elders",
			Category:    domain.CategoryTechnology,
			Description: "Teaching older adults to use smartphones and the internet safely, with donated devices and patient volunteers.",
			Image:       "/tech-elders.jpg",
			FundingGoal: 12000,
			Raised:      0,
			Budget: []domain.BudgetItem{
				{Category: "Devices", Amount: 7000},
				{Category: "Training materials", Amount: 3000},
				{Category: "Other", Amount: 2000},
			},
			Donors: 0,
			Milestones: []string{
				"Partner with two senior centers",
				"Run weekly drop-in classes",
				"Distribute 100 refurbished devices",
			},
			Creator:     "Daniel Osei",
			CreatorID:   "creator-4",
			CreatedDate: date(2025, time.February, 20),
			Status:      domain.StatusUnderReview,
			DaysLeft:    30,
		},
		{
			ID:          "6",
			Title:       "Crypto Lottery Fund",
			Category:    domain.CategoryCommunity,
			Description: "A community lottery paying out in tokens.",
			Image:       "/placeholder.svg",
			FundingGoal: 200000,
			Raised:      0,
			Budget: []domain.BudgetItem{
				{Category: "Operations", Amount: 200000},
			},
			Donors: 0,
			Milestones: []string{
				"Token launch",
			},
			Creator:     "Anonymous",
			CreatorID:   "creator-5",
			CreatedDate: date(2025, time.January, 30),
			Status:      domain.StatusRejected,
			DaysLeft:    0,
		},
	}
}

// SeedUpdates returns the dated notes attached to the seed projects.
func SeedUpdates() []*domain.ProjectUpdate {
	return []*domain.ProjectUpdate{
		{
			ID:        "u1",
			ProjectID: "1",
			Title:     "Fifth well is flowing",
			Date:      date(2025, time.January, 12),
			Body:      "The drilling team finished the fifth well this week, two weeks ahead of schedule. Water quality tests come back Friday.",
		},
		{
			ID:        "u2",
			ProjectID: "1",
			Title:     "Community training underway",
			Date:      date(2025, time.February, 3),
			Body:      "Forty residents completed the maintenance workshop, so every well now has a trained caretaker nearby.",
		},
		{
			ID:        "u3",
			ProjectID: "2",
			Title:     "First cohort graduates",
			Date:      date(2025, time.February, 8),
			Body:      "All 40 students finished the twelve-week course. Eleven already have interviews lined up through our employer partners.",
		},
		{
			ID:        "u4",
			ProjectID: "3",
			Title:     "Spring planting complete",
			Date:      date(2025, time.February, 18),
			Body:      "Volunteers planted all three lots over the weekend. First harvest expected in late April.",
		},
	}
}

// Seed loads the static dataset into an empty catalog.
func Seed(catalog *MemoryCatalog) error {
	for _, project := range SeedProjects() {
		if err := catalog.Insert(project); err != nil {
			return err
		}
	}
	for _, update := range SeedUpdates() {
		if err := catalog.AddUpdate(update); err != nil {
			return err
		}
	}
	return nil
}
