package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jonasarte-backend/internal/models"
	"jonasarte-backend/internal/store"
)

// GetProducts returns every product in store order.
func GetProducts(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		products, err := st.ListProducts()
		if err != nil {
			log.Printf("[%s] store error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

// GetProduct returns a single product by id. A non-numeric id behaves like
// any other miss and reports the product as not found.
func GetProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "Product not found")
			return
		}

		product, err := st.GetProduct(id)
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, "Product not found")
			return
		}
		if err != nil {
			log.Printf("[%s] store error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// CreateProduct stores the posted fields under a freshly assigned id.
// Beyond well-formed JSON nothing is validated; the admin client is
// trusted to send sensible fields.
func CreateProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products"
		defer handlePanic(c, route)

		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}
		// The id is always assigned by the store, never taken from the body.
		product.ID = 0

		created, err := st.CreateProduct(product)
		if err != nil {
			log.Printf("[%s] store error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		log.Printf("[%s] created product id=%d name=%q", route, created.ID, created.Name)
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateProduct shallow-merges the posted fields over the stored record.
// Fields absent from the body keep their prior values; the images list is
// replaced wholesale when present.
func UpdateProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /products/:id"
		defer handlePanic(c, route)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "Product not found")
			return
		}

		var patch store.ProductPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		updated, err := st.UpdateProduct(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, "Product not found")
			return
		}
		if err != nil {
			log.Printf("[%s] store error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// DeleteProduct removes the record and best-effort removes any uploaded
// blobs it referenced. Blob cleanup failures are logged, never surfaced.
func DeleteProduct(st *store.Store, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /products/:id"
		defer handlePanic(c, route)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "Product not found")
			return
		}

		removed, err := st.DeleteProduct(id)
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, "Product not found")
			return
		}
		if err != nil {
			log.Printf("[%s] store error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		for _, imageURL := range removed.Images {
			if err := safeDeleteUpload(uploadsDir, imageURL); err != nil {
				log.Printf("[%s] image delete failed: %v", route, err)
			}
		}

		log.Printf("[%s] deleted product id=%d", route, id)
		c.Status(http.StatusNoContent)
	}
}
