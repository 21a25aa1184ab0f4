package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	helper "checkinku_backend/internals/helpers"
	"checkinku_backend/internals/helpers/storage"
)

type FileController struct{}

func NewFileController() *FileController {
	return &FileController{}
}

// Serve membaca asset hasil generate (QR dsb) dari storage root.
// Asset immutable per nama file, jadi boleh di-cache sehari.
func (fc *FileController) Serve(c *fiber.Ctx) error {
	rel := c.Params("*")
	if rel == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "File not found")
	}

	data, err := storage.ReadFile(rel)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "File not found")
		}
		log.Printf("[ERROR] read file %s: %v", rel, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read file")
	}

	c.Set(fiber.HeaderContentType, storage.ContentTypeByExt(rel))
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(data)
}
