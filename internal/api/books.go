package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oswinp/curiodb/internal/domain"
)

func (s *Server) registerBookRoutes(rg *gin.RouterGroup) {
	rg.GET("/books", s.listBooks)
	rg.GET("/books/:id", s.getBook)
	rg.POST("/books", s.createBook)
	rg.PUT("/books/:id", s.updateBook)
	rg.DELETE("/books/:id", s.deleteBook)
}

func (s *Server) listBooks(c *gin.Context) {
	filter := domain.BookFilter{
		Author: c.Query("author"),
		Genre:  c.Query("genre"),
	}

	books, err := s.deps.BookRepo.List(c.Request.Context(), filter)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

func (s *Server) getBook(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	book, err := s.deps.BookRepo.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (s *Server) createBook(c *gin.Context) {
	var book domain.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if book.Genre == nil {
		book.Genre = []string{}
	}
	if !s.checkValid(c, &book) {
		return
	}

	if err := s.deps.BookRepo.Store(c.Request.Context(), &book); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

func (s *Server) updateBook(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var book domain.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	book.ID = id
	if book.Genre == nil {
		book.Genre = []string{}
	}
	if !s.checkValid(c, &book) {
		return
	}

	if err := s.deps.BookRepo.Update(c.Request.Context(), &book); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (s *Server) deleteBook(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := s.deps.BookRepo.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
