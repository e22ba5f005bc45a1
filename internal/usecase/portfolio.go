package usecase

import (
	"context"

	"go-portfolio-backend/internal/content"
	"go-portfolio-backend/internal/domain"
)

type portfolioUsecase struct{}

// NewPortfolioUsecase serves the static site content
func NewPortfolioUsecase() domain.PortfolioUsecase {
	return &portfolioUsecase{}
}

func (uc *portfolioUsecase) GetPortfolio(_ context.Context) *domain.Portfolio {
	return &domain.Portfolio{
		Profile:          content.Profile,
		Projects:         content.Projects,
		Experience:       content.Experience,
		Extracurriculars: content.Extracurriculars,
	}
}

func (uc *portfolioUsecase) GetProjects(_ context.Context) []domain.Project {
	return content.Projects
}

func (uc *portfolioUsecase) GetExperience(_ context.Context) []domain.Experience {
	return content.Experience
}

func (uc *portfolioUsecase) GetExtracurriculars(_ context.Context) []domain.Extracurricular {
	return content.Extracurriculars
}

func (uc *portfolioUsecase) GetResume(_ context.Context) *domain.Resume {
	return &content.Resume
}
