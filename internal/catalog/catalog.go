// Package catalog holds the compiled-in questionnaire catalog and the
// project archetype table. Both are static fixtures: created once, never
// mutated, and handed to the services as constructor arguments.
package catalog

import (
	"proposalsmith/internal/models"
)

// Question categories. Some categories feed their hour adjustments into a
// specific cost breakdown category, see the estimation service.
const (
	CategoryBasicInfo    = "Basic Information"
	CategoryCoreFeatures = "Core Features"
	CategoryIntegrations = "Integrations"
	CategoryDesignUX     = "Design & UX"
	CategoryTechnology   = "Technology & Scalability"
	CategoryAdvanced     = "Advanced Features"
	CategoryTimeline     = "Timeline & Deliverables"
)

// ProjectTypeQuestionID is the distinguished question whose answer selects
// the base-hour archetype.
const ProjectTypeQuestionID = "project-type"

var projectTypes = []models.ProjectType{
	{
		ID:            "mvp-web",
		Name:          "MVP Web App",
		Description:   "Minimum viable web application to validate a business idea",
		BaseHours:     240,
		Complexity:    models.ComplexityMedium,
		Features:      []string{"Authentication", "Basic dashboard", "Main CRUD", "Responsive design"},
		EstimatedCost: 18000,
	},
	{
		ID:            "mvp-mobile",
		Name:          "MVP Mobile App",
		Description:   "Native or hybrid mobile application to validate a market",
		BaseHours:     320,
		Complexity:    models.ComplexityHigh,
		Features:      []string{"Mobile authentication", "Push notifications", "Offline mode", "App store deployment"},
		EstimatedCost: 25000,
	},
	{
		ID:            "ecommerce",
		Name:          "E-commerce Platform",
		Description:   "Full online commerce platform",
		BaseHours:     480,
		Complexity:    models.ComplexityHigh,
		Features:      []string{"Product catalog", "Shopping cart", "Payment gateway", "Admin panel"},
		EstimatedCost: 35000,
	},
	{
		ID:            "saas-platform",
		Name:          "SaaS Platform",
		Description:   "Software as a service with subscriptions and multiple users",
		BaseHours:     600,
		Complexity:    models.ComplexityHigh,
		Features:      []string{"Multi-tenancy", "Subscription management", "Analytics", "REST API"},
		EstimatedCost: 45000,
	},
	{
		ID:            "marketplace",
		Name:          "Marketplace",
		Description:   "Platform connecting buyers and sellers",
		BaseHours:     720,
		Complexity:    models.ComplexityHigh,
		Features:      []string{"User profiles", "Review system", "Chat/messaging", "Commissions"},
		EstimatedCost: 55000,
	},
	{
		ID:            "social-network",
		Name:          "Social Network",
		Description:   "Social network with connection and content features",
		BaseHours:     800,
		Complexity:    models.ComplexityHigh,
		Features:      []string{"User profiles", "Content feed", "Follower system", "Messaging"},
		EstimatedCost: 65000,
	},
}

var questions = []models.Question{
	// Basic Information
	{
		ID:          ProjectTypeQuestionID,
		Category:    CategoryBasicInfo,
		Question:    "What kind of project is it?",
		Type:        models.SingleSelect,
		Options:     projectTypeNames(),
		Weight:      1,
		Description: "Select the project type that best describes your idea",
	},
	{
		ID:       "target-audience",
		Category: CategoryBasicInfo,
		Question: "Who is your primary target audience?",
		Type:     models.SingleSelect,
		Options: []string{
			"End consumers (B2C)",
			"Small businesses (B2B)",
			"Mid-size/large businesses (B2B)",
			"Developers (B2D)",
			"Education (EdTech)",
			"Health (HealthTech)",
			"Finance (FinTech)",
			"Other",
		},
		Weight:      0.8,
		Description: "Define your target market to adjust the strategy",
	},
	{
		ID:       "business-model",
		Category: CategoryBasicInfo,
		Question: "What is your primary business model?",
		Type:     models.SingleSelect,
		Options: []string{
			"Monthly/annual subscription",
			"Pay per use",
			"Transaction commissions",
			"Advertising",
			"Software licensing",
			"Marketplace fees",
			"Freemium",
			"One-time payment",
			"Other",
		},
		Weight:      0.7,
		Description: "Define how you plan to monetize your product",
	},

	// Core Features
	{
		ID:       "authentication",
		Category: CategoryCoreFeatures,
		Question: "What kind of authentication do you need?",
		Type:     models.MultiSelect,
		Options: []string{
			"Basic signup/login",
			"Social login (Google, Facebook, etc.)",
			"Two-factor authentication (2FA)",
			"SSO (Single Sign-On)",
			"Enterprise authentication (LDAP/Active Directory)",
			"Email/SMS verification",
		},
		Weight:      0.6,
		Description: "Select the required authentication methods",
	},
	{
		ID:       "user-management",
		Category: CategoryCoreFeatures,
		Question: "Which user management features do you need?",
		Type:     models.MultiSelect,
		Options: []string{
			"Basic user profiles",
			"Roles and permissions",
			"Teams/organizations",
			"User invitations",
			"Subscription management",
			"Admin panel",
			"User analytics",
		},
		Weight:      0.8,
		Description: "Define the user management capabilities",
	},
	{
		ID:       "content-management",
		Category: CategoryCoreFeatures,
		Question: "What kind of content do you need to manage?",
		Type:     models.MultiSelect,
		Options: []string{
			"Static pages",
			"Blog/news",
			"Product catalog",
			"Multimedia content (images, video)",
			"Documents/PDFs",
			"Comments/reviews",
			"User-generated content (UGC)",
			"Tag/category system",
		},
		Weight:      0.7,
		Description: "Select the content types you will handle",
	},

	// Integrations
	{
		ID:       "payment-integration",
		Category: CategoryIntegrations,
		Question: "Which payment integrations do you need?",
		Type:     models.MultiSelect,
		Options: []string{
			"Stripe",
			"PayPal",
			"MercadoPago",
			"Bank transfers",
			"Cryptocurrencies",
			"Automatic invoicing",
			"Recurring subscriptions",
			"Multiple currencies",
		},
		Weight:      0.9,
		Description: "Select the required payment gateways",
	},
	{
		ID:       "third-party-integrations",
		Category: CategoryIntegrations,
		Question: "Which third-party integrations do you need?",
		Type:     models.MultiSelect,
		Options: []string{
			"Email marketing (Mailchimp, SendGrid)",
			"Analytics (Google Analytics, Mixpanel)",
			"CRM (HubSpot, Salesforce)",
			"Live chat (Intercom, Zendesk)",
			"Social networks (Facebook, Twitter, Instagram)",
			"Google Maps/location",
			"Push notifications",
			"Calendar (Google Calendar, Outlook)",
			"Cloud storage (AWS S3, Google Cloud)",
			"External database",
		},
		Weight:      0.6,
		Description: "Select the external integrations you need",
	},

	// Design & UX
	{
		ID:       "design-requirements",
		Category: CategoryDesignUX,
		Question: "What design requirements do you have?",
		Type:     models.MultiSelect,
		Options: []string{
			"Responsive design (mobile, tablet, desktop)",
			"Native design for iOS/Android",
			"Custom branding",
			"Custom iconography",
			"Animations and micro-interactions",
			"Dark mode",
			"Accessibility (WCAG 2.1)",
			"Internationalization (i18n)",
			"Progressive Web App (PWA)",
		},
		Weight:      0.7,
		Description: "Define the design and user experience requirements",
	},
	{
		ID:       "ui-framework",
		Category: CategoryDesignUX,
		Question: "Do you prefer a specific UI framework?",
		Type:     models.SingleSelect,
		Options: []string{
			"Material Design (Google)",
			"Ant Design",
			"Bootstrap",
			"Tailwind CSS",
			"Chakra UI",
			"Mantine",
			"Custom design",
			"No preference",
		},
		Weight:      0.3,
		Description: "Select the preferred UI framework",
	},

	// Technology & Scalability
	{
		ID:       "tech-stack",
		Category: CategoryTechnology,
		Question: "Which technology stack do you prefer?",
		Type:     models.SingleSelect,
		Options: []string{
			"React + Node.js (recommended for startups)",
			"Vue.js + Node.js",
			"Angular + .NET",
			"React Native (mobile)",
			"Flutter (mobile)",
			"Python + Django/Flask",
			"Ruby on Rails",
			"PHP + Laravel",
			"No preference",
		},
		Weight:      0.5,
		Description: "Select the preferred technology stack",
	},
	{
		ID:       "scalability-requirements",
		Category: CategoryTechnology,
		Question: "What scalability requirements do you have?",
		Type:     models.MultiSelect,
		Options: []string{
			"Cloud-native architecture",
			"Microservices",
			"Load balancing",
			"CDN for static content",
			"Distributed cache (Redis)",
			"Scalable database",
			"Monitoring and alerting",
			"Automatic backups",
			"CI/CD pipeline",
			"Containerization (Docker)",
		},
		Weight:      0.8,
		Description: "Define the scalability and infrastructure requirements",
	},
	{
		ID:       "expected-users",
		Category: CategoryTechnology,
		Question: "How many users do you expect in the first 6 months?",
		Type:     models.SingleSelect,
		Options: []string{
			"Fewer than 1,000 users",
			"1,000 - 10,000 users",
			"10,000 - 100,000 users",
			"More than 100,000 users",
			"Not sure",
		},
		Weight:      0.6,
		Description: "Estimate the user volume to size the infrastructure",
	},

	// Advanced Features
	{
		ID:       "advanced-features",
		Category: CategoryAdvanced,
		Question: "Which advanced features do you need?",
		Type:     models.MultiSelect,
		Options: []string{
			"Advanced search with filters",
			"Recommendation system",
			"Machine learning/AI",
			"Live chat",
			"Video conferencing",
			"Video streaming",
			"Real-time updates (WebSockets)",
			"Notification system",
			"Gamification (points, badges)",
			"Public developer API",
			"Webhooks",
			"IoT integration",
		},
		Weight:      1.0,
		Description: "Select the required advanced features",
	},
	{
		ID:       "security-requirements",
		Category: CategoryAdvanced,
		Question: "What security requirements do you need?",
		Type:     models.MultiSelect,
		Options: []string{
			"SSL/TLS encryption",
			"GDPR compliance",
			"HIPAA compliance (health)",
			"PCI DSS compliance (payments)",
			"Audit logs",
			"Penetration testing",
			"Vulnerability scanning",
			"Data encryption at rest",
			"Backup encryption",
			"Multi-factor authentication",
		},
		Weight:      0.9,
		Description: "Define the security and compliance requirements",
	},

	// Timeline & Deliverables
	{
		ID:       "timeline",
		Category: CategoryTimeline,
		Question: "What is your preferred timeline?",
		Type:     models.SingleSelect,
		Options: []string{
			"MVP in 4-6 weeks (very fast)",
			"MVP in 8-12 weeks (standard)",
			"MVP in 16-20 weeks (detailed)",
			"Full product in 6-12 months",
			"No time constraints",
		},
		Weight:      0.4,
		Description: "Define the preferred development timeline",
	},
	{
		ID:       "deliverables",
		Category: CategoryTimeline,
		Question: "Which deliverables do you need?",
		Type:     models.MultiSelect,
		Options: []string{
			"Complete source code",
			"Technical documentation",
			"User manual",
			"Administration manual",
			"Team training",
			"Post-launch support (3 months)",
			"Ongoing maintenance",
			"Performance optimization",
			"SEO and digital marketing",
			"App store submission",
		},
		Weight:      0.5,
		Description: "Select the additional deliverables required",
	},
}

func projectTypeNames() []string {
	names := make([]string, len(projectTypes))
	for i, pt := range projectTypes {
		names[i] = pt.Name
	}
	return names
}

// Questions returns the catalog in its declared order.
func Questions() []models.Question {
	out := make([]models.Question, len(questions))
	copy(out, questions)
	return out
}

// ProjectTypes returns the project archetype table.
func ProjectTypes() []models.ProjectType {
	out := make([]models.ProjectType, len(projectTypes))
	copy(out, projectTypes)
	return out
}

// Group is a category with its questions in catalog order.
type Group struct {
	Category  string
	Questions []models.Question
}

// GroupByCategory partitions questions by category. Categories appear in
// first-encountered order and questions keep their catalog order within
// each group.
func GroupByCategory(qs []models.Question) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, q := range qs {
		i, ok := index[q.Category]
		if !ok {
			i = len(groups)
			index[q.Category] = i
			groups = append(groups, Group{Category: q.Category})
		}
		groups[i].Questions = append(groups[i].Questions, q)
	}

	return groups
}
