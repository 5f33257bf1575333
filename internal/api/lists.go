package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oswinp/curiodb/internal/domain"
)

func (s *Server) registerListRoutes(rg *gin.RouterGroup) {
	rg.GET("/lists", s.listLists)
	rg.GET("/lists/:id", s.getList)
	rg.POST("/lists", s.createList)
	rg.PUT("/lists/:id", s.updateList)
	rg.DELETE("/lists/:id", s.deleteList)

	rg.PUT("/lists/:id/films/:filmID", s.addListFilm)
	rg.DELETE("/lists/:id/films/:filmID", s.removeListFilm)
	rg.PUT("/lists/:id/books/:bookID", s.addListBook)
	rg.DELETE("/lists/:id/books/:bookID", s.removeListBook)
}

func (s *Server) listLists(c *gin.Context) {
	lists, err := s.deps.ListRepo.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

func (s *Server) getList(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, err := s.deps.ListRepo.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (s *Server) createList(c *gin.Context) {
	var list domain.List
	if err := c.ShouldBindJSON(&list); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !s.checkValid(c, &list) {
		return
	}

	if err := s.deps.ListRepo.Store(c.Request.Context(), &list); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, list)
}

func (s *Server) updateList(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var list domain.List
	if err := c.ShouldBindJSON(&list); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	list.ID = id
	if !s.checkValid(c, &list) {
		return
	}

	if err := s.deps.ListRepo.Update(c.Request.Context(), &list); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (s *Server) deleteList(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := s.deps.ListRepo.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) addListFilm(c *gin.Context) {
	listID, ok := paramID(c, "id")
	if !ok {
		return
	}
	filmID, ok := paramID(c, "filmID")
	if !ok {
		return
	}

	if err := s.deps.ListRepo.AddFilm(c.Request.Context(), listID, filmID); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) removeListFilm(c *gin.Context) {
	listID, ok := paramID(c, "id")
	if !ok {
		return
	}
	filmID, ok := paramID(c, "filmID")
	if !ok {
		return
	}

	if err := s.deps.ListRepo.RemoveFilm(c.Request.Context(), listID, filmID); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) addListBook(c *gin.Context) {
	listID, ok := paramID(c, "id")
	if !ok {
		return
	}
	bookID, ok := paramID(c, "bookID")
	if !ok {
		return
	}

	if err := s.deps.ListRepo.AddBook(c.Request.Context(), listID, bookID); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) removeListBook(c *gin.Context) {
	listID, ok := paramID(c, "id")
	if !ok {
		return
	}
	bookID, ok := paramID(c, "bookID")
	if !ok {
		return
	}

	if err := s.deps.ListRepo.RemoveBook(c.Request.Context(), listID, bookID); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
