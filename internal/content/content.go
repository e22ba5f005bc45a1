// Package content holds the static portfolio site data served by the
// read-only endpoints. Edit here, redeploy, done.
package content

import "go-portfolio-backend/internal/domain"

var Profile = domain.Profile{
	Name:     "Daniel Suresh",
	Headline: "Software Engineer — backend systems and automation",
	About: "Backend engineer focused on data pipelines, automation and " +
		"developer tooling. I like small services that do one thing well, " +
		"measured twice and shipped once.",
	Location: "Toronto, Canada",
	Links: []domain.Link{
		{Label: "GitHub", URL: "https://github.com/danielsuresh"},
		{Label: "LinkedIn", URL: "https://linkedin.com/in/danielsuresh"},
	},
	Goals: []string{
		"Ship production systems that stay boring under load",
		"Contribute to open-source infrastructure tooling",
		"Mentor early-career engineers",
	},
}

var Projects = []domain.Project{
	{
		Title: "Inbox Insights: Email Summarizer + Task Engine",
		Description: "Task management system integrating mail, Notion and " +
			"spreadsheets with LLM summarization. Metadata-based dedup " +
			"protocols cut manual email filtering by 90%.",
		Technologies: []string{"Python", "Gmail API", "Notion API"},
		GithubURL:    "https://github.com/danielsuresh/inbox-insights",
		Impact:       "Saves users 8 hours per week on administrative tasks",
	},
	{
		Title: "Backtester Pro: Modular Strategy Engine",
		Description: "Hedge-fund style metrics (Sharpe, drawdown) and " +
			"automated reporting to validate trading strategies at scale " +
			"on 100k-row datasets, with strategy/engine/UI layers fully " +
			"separated and CI-ready unit tests.",
		Technologies: []string{"Python", "Polars", "PostgreSQL", "Pytest"},
		GithubURL:    "https://github.com/danielsuresh/backtester-pro",
		Impact:       "Increased code testability by 85%",
	},
	{
		Title: "This Site",
		Description: "Single-page portfolio with a Go backend for the " +
			"contact form: validation, rate limiting and retried delivery " +
			"through a transactional email API.",
		Technologies: []string{"Go", "Gin", "Resend"},
		GithubURL:    "https://github.com/danielsuresh/portfolio",
	},
}

var Experience = []domain.Experience{
	{
		Title:    "Software Engineer",
		Company:  "LB Connect",
		Duration: "July 2025 - Present",
		Description: []string{
			"Maintained <5% bug regression rate post-release while owning backend code reviews and production releases",
			"Improved database consistency 4x by refactoring export pipelines with indexing, error handling and schema validation",
		},
	},
	{
		Title:    "Automation Analyst",
		Company:  "Royal Bank of Canada",
		Duration: "May 2025 - Dec 2025",
		Description: []string{
			"Reduced data processing time by 90% by optimizing backends with Polars and CI/CD pipelines",
			"Tripled financial audit speeds by automating the parsing of 1,000+ transaction records per week",
		},
	},
	{
		Title:    "Math Tutor",
		Company:  "A4 Active Learning",
		Duration: "Sept 2018 - Present",
		Description: []string{
			"Progressed from 1-on-1 foundational arithmetic to small-group calculus and data management across grades 9-12",
			"Personalized lesson plans boosted average student performance by 25-30%",
		},
	},
}

var Extracurriculars = []domain.Extracurricular{
	{
		Title:        "Competitive Programming Club",
		Organization: "University of Toronto",
		Role:         "Organizer",
		Description:  "Weekly problem sessions and two internal contests per term.",
		Impact:       "Grew attendance from 12 to 60 regulars",
	},
	{
		Title:        "Youth Robotics Mentor",
		Organization: "FIRST Robotics",
		Role:         "Mentor",
		Description:  "Coached a high-school team through build season and regionals.",
	},
}

var Resume = domain.Resume{
	URL:       "/static/resume.pdf",
	FileName:  "daniel-suresh-resume.pdf",
	UpdatedAt: "2026-08-01",
}
