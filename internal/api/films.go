package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oswinp/curiodb/internal/domain"
)

func (s *Server) registerFilmRoutes(rg *gin.RouterGroup) {
	rg.GET("/films", s.listFilms)
	rg.GET("/films/:id", s.getFilm)
	rg.POST("/films", s.createFilm)
	rg.PUT("/films/:id", s.updateFilm)
	rg.DELETE("/films/:id", s.deleteFilm)

	rg.POST("/films/batch-import", s.batchImport)
	rg.POST("/films/import-ratings", s.importRatings)
}

func (s *Server) listFilms(c *gin.Context) {
	filter := domain.FilmFilter{
		Director: c.Query("director"),
		Genre:    c.Query("genre"),
		Cast:     c.Query("cast"),
		Crew:     c.Query("crew"),
	}

	films, err := s.deps.FilmRepo.List(c.Request.Context(), filter)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, films)
}

func (s *Server) getFilm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	film, err := s.deps.FilmRepo.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, film)
}

func (s *Server) createFilm(c *gin.Context) {
	var film domain.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if film.Genre == nil {
		film.Genre = []string{}
	}
	if !s.checkValid(c, &film) {
		return
	}

	if err := s.deps.FilmRepo.Store(c.Request.Context(), &film); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, film)
}

func (s *Server) updateFilm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var film domain.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	film.ID = id
	if film.Genre == nil {
		film.Genre = []string{}
	}
	if !s.checkValid(c, &film) {
		return
	}

	if err := s.deps.FilmRepo.Update(c.Request.Context(), &film); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, film)
}

func (s *Server) deleteFilm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := s.deps.FilmRepo.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type batchImportRequest struct {
	Items []string `json:"items"`
}

// batchImport always answers 200 with the itemized report once the request
// itself is well-formed; per-item failures live inside the report. Only a
// missing or empty items list is rejected.
func (s *Server) batchImport(c *gin.Context) {
	var req batchImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items is required"})
		return
	}

	results, err := s.deps.Importer.ImportBatch(c.Request.Context(), req.Items)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) importRatings(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		s.respondError(c, err)
		return
	}
	defer f.Close()

	results, err := s.deps.Importer.ImportRatings(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
