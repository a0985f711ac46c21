package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jonasarte-backend/internal/store"
)

type CategoryRequest struct {
	Name string `json:"name"`
}

func GetCategories(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories"
		defer handlePanic(c, route)

		categories, err := st.ListCategories()
		if err != nil {
			log.Printf("[%s] store error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		log.Printf("[%s] returning %d categories", route, len(categories))
		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /categories"
		defer handlePanic(c, route)

		// Nothing beyond well-formed JSON is validated; an empty name is
		// stored as-is.
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		category, err := st.CreateCategory(req.Name)
		if err != nil {
			log.Printf("[%s] store error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		log.Printf("[%s] created category id=%d name=%q", route, category.ID, category.Name)
		c.JSON(http.StatusCreated, category)
	}
}

func UpdateCategory(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /categories/:id"
		defer handlePanic(c, route)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "Category not found")
			return
		}

		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		category, err := st.UpdateCategory(id, req.Name)
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, "Category not found")
			return
		}
		if err != nil {
			log.Printf("[%s] store error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes the category only. Products referencing it keep
// their dangling category name; renaming or reassigning them is left to
// the admin.
func DeleteCategory(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /categories/:id"
		defer handlePanic(c, route)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "Category not found")
			return
		}

		err = st.DeleteCategory(id)
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, "Category not found")
			return
		}
		if err != nil {
			log.Printf("[%s] store error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		log.Printf("[%s] deleted category id=%d", route, id)
		c.Status(http.StatusNoContent)
	}
}
