package domain

import "context"

// Project is a portfolio project entry
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	DemoURL      string   `json:"demoUrl,omitempty"`
	Impact       string   `json:"impact,omitempty"`
}

// Experience is a work experience entry
type Experience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// Extracurricular is a hobby or volunteering entry
type Extracurricular struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Description  string `json:"description"`
	Impact       string `json:"impact,omitempty"`
}

// Profile is the hero/about section content
type Profile struct {
	Name     string   `json:"name"`
	Headline string   `json:"headline"`
	About    string   `json:"about"`
	Location string   `json:"location"`
	Links    []Link   `json:"links"`
	Goals    []string `json:"goals"`
}

// Link is a labelled external URL
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Resume describes the downloadable resume asset
type Resume struct {
	URL       string `json:"url"`
	FileName  string `json:"fileName"`
	UpdatedAt string `json:"updatedAt"`
}

// Portfolio bundles the full static site content
type Portfolio struct {
	Profile          Profile           `json:"profile"`
	Projects         []Project         `json:"projects"`
	Experience       []Experience      `json:"experience"`
	Extracurriculars []Extracurricular `json:"extracurriculars"`
}

// PortfolioUsecase serves the read-only site content
type PortfolioUsecase interface {
	GetPortfolio(ctx context.Context) *Portfolio
	GetProjects(ctx context.Context) []Project
	GetExperience(ctx context.Context) []Experience
	GetExtracurriculars(ctx context.Context) []Extracurricular
	GetResume(ctx context.Context) *Resume
}
