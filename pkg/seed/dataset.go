// Package seed holds the static demo dataset. It doubles as the fallback
// payload for company reads when the persistent store is unreachable, so
// the platform stays demonstrable without a database.
package seed

import (
	"time"

	"github.com/pear-vc/demoday-engine/pkg/models"
)

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// Companies returns the demo company directory with founders populated,
// ordered featured-first then newest-first to match the store's contract.
func Companies() []*models.Company {
	companies := []*models.Company{
		{
			ID:          "c1",
			Name:        "Innovate Solutions",
			Tagline:     "AI-powered workflow automation for enterprises",
			Description: "Innovate Solutions builds an AI platform that automates repetitive back-office workflows, cutting processing time by 80% for finance and operations teams.",
			Industry:    "AI",
			Stage:       models.StageSeed,
			Batch:       "S24",
			Location:    "San Francisco, CA",
			Website:     "https://innovatesolutions.example.com",
			Tags:        []string{"AI", "B2B SaaS", "Automation"},
			Featured:    true,
			CreatedAt:   daysAgo(30),
		},
		{
			ID:          "c2",
			Name:        "PayBridge",
			Tagline:     "Cross-border payments without the friction",
			Description: "PayBridge provides instant settlement rails for cross-border B2B payments in emerging markets, with built-in FX hedging and compliance tooling.",
			Industry:    "Fintech",
			Stage:       models.StageSeriesA,
			Batch:       "W24",
			Location:    "New York, NY",
			Website:     "https://paybridge.example.com",
			Tags:        []string{"Payments", "B2B SaaS", "Emerging Markets"},
			Featured:    true,
			CreatedAt:   daysAgo(45),
		},
		{
			ID:          "c3",
			Name:        "FutureTech Dynamics",
			Tagline:     "Grid-scale storage for a renewable future",
			Description: "FutureTech Dynamics develops long-duration energy storage using iron-flow batteries, enabling utilities to shift renewable generation to peak demand hours.",
			Industry:    "Climate Tech",
			Stage:       models.StageSeed,
			Batch:       "S24",
			Location:    "Austin, TX",
			Website:     "https://futuretechdynamics.example.com",
			Tags:        []string{"Energy", "Hardware", "Sustainability"},
			Featured:    false,
			CreatedAt:   daysAgo(25),
		},
		{
			ID:          "c4",
			Name:        "CareLoop Health",
			Tagline:     "Continuous care between doctor visits",
			Description: "CareLoop Health connects chronic-care patients with their care teams through remote monitoring and automated check-ins, reducing readmissions by a third.",
			Industry:    "Healthcare",
			Stage:       models.StagePreSeed,
			Batch:       "W24",
			Location:    "Boston, MA",
			Website:     "https://careloop.example.com",
			Tags:        []string{"Digital Health", "Remote Monitoring"},
			Featured:    false,
			CreatedAt:   daysAgo(20),
		},
		{
			ID:          "c5",
			Name:        "Sentinel Shield",
			Tagline:     "Zero-trust security for machine identities",
			Description: "Sentinel Shield secures service-to-service communication with automated certificate rotation and anomaly detection for machine identities at scale.",
			Industry:    "Security",
			Stage:       models.StageSeed,
			Batch:       "S23",
			Location:    "Seattle, WA",
			Website:     "https://sentinelshield.example.com",
			Tags:        []string{"Cybersecurity", "DevOps", "B2B SaaS"},
			Featured:    false,
			CreatedAt:   daysAgo(60),
		},
		{
			ID:          "c6",
			Name:        "ForgeWorks Robotics",
			Tagline:     "Adaptive robotics for small-batch manufacturing",
			Description: "ForgeWorks Robotics builds vision-guided robotic arms that retool themselves in minutes, bringing automation to small-batch manufacturers for the first time.",
			Industry:    "Industrial",
			Stage:       models.StageSeriesA,
			Batch:       "S23",
			Location:    "Detroit, MI",
			Website:     "https://forgeworks.example.com",
			Tags:        []string{"Robotics", "Manufacturing", "Hardware"},
			Featured:    false,
			CreatedAt:   daysAgo(90),
		},
	}

	byCompany := make(map[string][]*models.Founder)
	for _, f := range Founders() {
		byCompany[f.CompanyID] = append(byCompany[f.CompanyID], f)
	}
	for _, c := range companies {
		c.Founders = byCompany[c.ID]
		if c.Founders == nil {
			c.Founders = []*models.Founder{}
		}
	}

	return companies
}

// Founders returns the demo founding teams.
func Founders() []*models.Founder {
	return []*models.Founder{
		{
			ID:        "f1",
			Name:      "John Smith",
			Title:     "CEO & Co-founder",
			Bio:       "Former ML infrastructure lead; spent six years automating document pipelines before founding Innovate Solutions.",
			LinkedIn:  "https://linkedin.com/in/johnsmith",
			CompanyID: "c1",
		},
		{
			ID:        "f2",
			Name:      "Priya Raman",
			Title:     "CTO & Co-founder",
			Bio:       "Built large-scale NLP systems; leads the research team behind Innovate's workflow models.",
			CompanyID: "c1",
		},
		{
			ID:        "f3",
			Name:      "Daniel Okafor",
			Title:     "CEO",
			Bio:       "Ten years in payments infrastructure across three continents; previously founded a remittance startup acquired in 2021.",
			LinkedIn:  "https://linkedin.com/in/danielokafor",
			CompanyID: "c2",
		},
		{
			ID:        "f4",
			Name:      "Elena Vasquez",
			Title:     "CEO & Co-founder",
			Bio:       "Battery chemist turned founder; holds four patents in flow-battery electrode design.",
			CompanyID: "c3",
		},
		{
			ID:        "f5",
			Name:      "Marcus Lee",
			Title:     "CEO",
			Bio:       "Practicing physician for eight years before building CareLoop to close the gap between visits.",
			CompanyID: "c4",
		},
		{
			ID:        "f6",
			Name:      "Aisha Diallo",
			Title:     "CEO & Co-founder",
			Bio:       "Led identity security at a major cloud provider; started Sentinel Shield after seeing machine identities outnumber humans 40 to 1.",
			Twitter:   "https://twitter.com/aishadiallo",
			CompanyID: "c5",
		},
		{
			ID:        "f7",
			Name:      "Tom Novak",
			Title:     "CEO",
			Bio:       "Third-generation machinist with a robotics PhD; bridges shop-floor reality and modern automation.",
			CompanyID: "c6",
		},
	}
}

// SampleConnectionRequests returns demo connection requests inserted by the
// reset flow. Statuses other than unreviewed are intentional here; only the
// administrative insert path accepts them.
func SampleConnectionRequests() []*models.ConnectionRequest {
	return []*models.ConnectionRequest{
		{
			ID:               models.NewConnectionRequestID(),
			InvestorID:       "investor-1",
			InvestorName:     "Sarah Chen",
			InvestorEmail:    "investor@demo.com",
			InvestorFirm:     "Acme Ventures",
			InvestorLinkedIn: "https://linkedin.com/in/sarahchen",
			CompanyID:        "c1",
			CompanyName:      "Innovate Solutions",
			Message:          "Really impressed by your AI-driven approach. Would love to discuss potential investment opportunities.",
			Interests:        []string{"Lead Investor", "Board Seat"},
			CheckSize:        "$1M - $5M",
			Timeline:         "Short-term (1-3 months)",
			Status:           models.StatusUnreviewed,
			CreatedAt:        daysAgo(2),
		},
		{
			ID:               models.NewConnectionRequestID(),
			InvestorID:       "investor-1",
			InvestorName:     "Sarah Chen",
			InvestorEmail:    "investor@demo.com",
			InvestorFirm:     "Acme Ventures",
			InvestorLinkedIn: "https://linkedin.com/in/sarahchen",
			CompanyID:        "c3",
			CompanyName:      "FutureTech Dynamics",
			Message:          "Your renewable energy solution is exactly what the market needs. Let's connect!",
			Interests:        []string{"Follow-on Investment"},
			CheckSize:        "$250K - $1M",
			Timeline:         "Medium-term (3-6 months)",
			Status:           models.StatusReviewed,
			CreatedAt:        daysAgo(5),
			ReviewedAt:       timePtr(daysAgo(4)),
		},
	}
}

// Users returns the hardcoded demo credential list.
func Users() []*models.User {
	return []*models.User{
		{
			ID:       "investor-1",
			Email:    "investor@demo.com",
			Password: "investor123",
			Name:     "Sarah Chen",
			Role:     models.RoleInvestor,
		},
		{
			ID:       "admin-1",
			Email:    "admin@pear.vc",
			Password: "admin123",
			Name:     "Pear Admin",
			Role:     models.RoleAdmin,
		},
		{
			ID:        "founder-1",
			Email:     "founder@innovate.com",
			Password:  "founder123",
			Name:      "John Smith",
			Role:      models.RoleFounder,
			CompanyID: "c1",
		},
	}
}
