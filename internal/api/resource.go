package api

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"

	"github.com/oswinp/curiodb/internal/domain"
)

// withID forces the URL id onto the bound record so the payload cannot
// retarget another row. Every flat entity carries an int64 ID field.
func withID[T any](record *T, id int64) *T {
	v := reflect.ValueOf(record).Elem().FieldByName("ID")
	if v.IsValid() && v.CanSet() && v.Kind() == reflect.Int64 {
		v.SetInt(id)
	}
	return record
}

// registerResource wires the uniform CRUD routes for one flat catalog entity.
func registerResource[T any](s *Server, rg *gin.RouterGroup, path string, repo domain.ResourceRepository[T]) {
	rg.GET("/"+path, func(c *gin.Context) {
		records, err := repo.List(c.Request.Context())
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	})

	rg.GET("/"+path+"/:id", func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		record, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	})

	rg.POST("/"+path, func(c *gin.Context) {
		var record T
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !s.checkValid(c, &record) {
			return
		}

		if err := repo.Store(c.Request.Context(), &record); err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, record)
	})

	rg.PUT("/"+path+"/:id", func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var record T
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !s.checkValid(c, &record) {
			return
		}

		if err := repo.Update(c.Request.Context(), withID(&record, id)); err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	})

	rg.DELETE("/"+path+"/:id", func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		if err := repo.Delete(c.Request.Context(), id); err != nil {
			s.respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}
