package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"gelato-pos/internal/store"
	"gelato-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// maxBundleSize bounds an imported backup document.
const maxBundleSize = 10 << 20

// BackupHandler exports and restores the full four-collection snapshot.
type BackupHandler struct {
	Store *store.Store
}

func NewBackupHandler(s *store.Store) *BackupHandler {
	return &BackupHandler{Store: s}
}

// ExportBackup downloads the full snapshot as one JSON document.
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	data, err := h.Store.ExportBundle()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao gerar backup")
		return
	}

	fileName := fmt.Sprintf("backup_gelato_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
	c.Data(http.StatusOK, "application/json", data)
}

// ImportBackup replaces all four collections with an uploaded bundle. The
// caller must pass ?confirm=true; the document is shape-validated before any
// slot is overwritten.
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	if c.Query("confirm") != "true" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
			"Confirmação necessária: os dados atuais serão substituídos")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBundleSize))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Falha ao ler arquivo")
		return
	}

	if err := h.Store.ImportBundle(body); err != nil {
		var bundleErr *store.BundleError
		if errors.As(err, &bundleErr) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
				"Arquivo de backup inválido: "+bundleErr.Field)
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao restaurar backup")
		return
	}

	util.Success(c, util.Response{
		"message": "Backup restaurado",
	})
}
