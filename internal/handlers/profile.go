package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jonasarte-backend/internal/models"
	"jonasarte-backend/internal/store"
)

func GetProfile(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /profile"
		defer handlePanic(c, route)

		profile, err := st.Profile()
		if err != nil {
			log.Printf("[%s] store error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// ReplaceProfile overwrites the whole bio with the posted fields. This is
// not a merge: anything the client leaves out is gone.
func ReplaceProfile(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /profile"
		defer handlePanic(c, route)

		var profile models.Profile
		if err := c.ShouldBindJSON(&profile); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		if err := st.ReplaceProfile(profile); err != nil {
			log.Printf("[%s] store error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}
