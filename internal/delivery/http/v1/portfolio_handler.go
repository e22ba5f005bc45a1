package v1

import (
	"net/http"

	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

// NewPortfolioHandler registers the read-only site content routes
func NewPortfolioHandler(public *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	public.GET("/portfolio", handler.GetPortfolio)
	public.GET("/portfolio/projects", handler.GetProjects)
	public.GET("/portfolio/experience", handler.GetExperience)
	public.GET("/portfolio/extracurriculars", handler.GetExtracurriculars)
	public.GET("/resume", handler.GetResume)
}

// GetPortfolio godoc
// @Summary      Full portfolio content
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  domain.Portfolio
// @Router       /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, h.portfolioUC.GetPortfolio(c.Request.Context()))
}

// GetProjects godoc
// @Summary      Project entries
// @Tags         portfolio
// @Produce      json
// @Success      200  {array}  domain.Project
// @Router       /portfolio/projects [get]
func (h *PortfolioHandler) GetProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.portfolioUC.GetProjects(c.Request.Context()))
}

// GetExperience godoc
// @Summary      Work experience entries
// @Tags         portfolio
// @Produce      json
// @Success      200  {array}  domain.Experience
// @Router       /portfolio/experience [get]
func (h *PortfolioHandler) GetExperience(c *gin.Context) {
	c.JSON(http.StatusOK, h.portfolioUC.GetExperience(c.Request.Context()))
}

// GetExtracurriculars godoc
// @Summary      Extracurricular entries
// @Tags         portfolio
// @Produce      json
// @Success      200  {array}  domain.Extracurricular
// @Router       /portfolio/extracurriculars [get]
func (h *PortfolioHandler) GetExtracurriculars(c *gin.Context) {
	c.JSON(http.StatusOK, h.portfolioUC.GetExtracurriculars(c.Request.Context()))
}

// GetResume godoc
// @Summary      Resume download descriptor
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  domain.Resume
// @Router       /resume [get]
func (h *PortfolioHandler) GetResume(c *gin.Context) {
	c.JSON(http.StatusOK, h.portfolioUC.GetResume(c.Request.Context()))
}
