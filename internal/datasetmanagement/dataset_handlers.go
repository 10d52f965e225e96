// Package datasetmanagement exposes the admin-only dataset API: running
// a generation batch and inspecting published manifests.
package datasetmanagement

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"numbers-dictation-platform/backend/internal/catalog"
	"numbers-dictation-platform/backend/internal/coreengine/datasetgenerator"
	"numbers-dictation-platform/backend/internal/datastore"
	"numbers-dictation-platform/backend/internal/logging"
)

// DatasetHandlers serves the admin dataset endpoints.
type DatasetHandlers struct {
	generator *datasetgenerator.Generator
	store     datastore.ManifestStore
	log       *logging.Logger
}

// NewDatasetHandlers wires the admin dataset endpoints.
func NewDatasetHandlers(generator *datasetgenerator.Generator, store datastore.ManifestStore, log *logging.Logger) *DatasetHandlers {
	if log == nil {
		log = logging.NewNop()
	}
	return &DatasetHandlers{generator: generator, store: store, log: log}
}

// GenerateDatasetRequest is the payload for POST /admin/numbers/datasets.
// Counts maps number type names to how many exercises to generate.
type GenerateDatasetRequest struct {
	VersionTag string         `json:"version_tag"`
	Counts     map[string]int `json:"counts" binding:"required"`
}

// GenerateDataset handles POST /admin/numbers/datasets. The batch runs
// synchronously; large requests take as long as their LLM and TTS calls.
func (h *DatasetHandlers) GenerateDataset(c *gin.Context) {
	var req GenerateDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	if len(req.Counts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "counts must name at least one number type"})
		return
	}

	perTypeCounts := make(map[catalog.NumberType]int, len(req.Counts))
	for raw, count := range req.Counts {
		numberType, err := catalog.ParseNumberType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		perTypeCounts[numberType] = count
	}

	version := req.VersionTag
	if version == "" {
		version = datasetgenerator.CurrentWeekTag()
	}

	stats, err := h.generator.Generate(c.Request.Context(), version, perTypeCounts)
	if err != nil {
		h.log.Error("dataset generation failed", "version", version, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate dataset: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"version": version,
		"stats":   stats,
	})
}

// ListDatasets handles GET /admin/numbers/datasets.
func (h *DatasetHandlers) ListDatasets(c *gin.Context) {
	versions, err := h.store.ListVersions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list datasets: " + err.Error()})
		return
	}
	if versions == nil {
		versions = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

// GetDataset handles GET /admin/numbers/datasets/:version.
func (h *DatasetHandlers) GetDataset(c *gin.Context) {
	version := c.Param("version")

	manifest, err := h.store.LoadManifest(version)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load manifest: " + err.Error()})
		return
	}
	if manifest.ExerciseCount == 0 && len(manifest.Exercises) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found: " + version})
		return
	}
	c.JSON(http.StatusOK, manifest)
}
