package http

import (
	"mime"
	"net/http"
	"strings"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/application/usecases/queries"
	"relocation/internal/core/domain/model/document"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/generated/servers"
	"relocation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListDocuments handles GET /api/v1/documents.
func (s *Server) ListDocuments(ctx echo.Context) error {
	items, err := s.queries.ListDocuments.Handle(ctx.Request().Context(), queries.NewListDocumentsQuery(actorFrom(ctx)))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, mapAll(items, toDocument))
}

// UploadDocument handles POST /api/v1/documents (multipart/form-data).
// The form carries the file and its type, and optionally a display name,
// a description and the relocation it belongs to.
func (s *Server) UploadDocument(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("file", err)
	}
	docType, err := document.ParseType(ctx.FormValue("type"))
	if err != nil {
		return err
	}

	var relocationID *kernel.UUID
	if raw := strings.TrimSpace(ctx.FormValue("relocation_id")); raw != "" {
		parsed, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return parseErr
		}
		relocationID = &parsed
	}

	name := strings.TrimSpace(ctx.FormValue("name"))
	if name == "" {
		name = fileHeader.Filename
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	actor := actorFrom(ctx)
	documentID := kernel.NewUUID()
	cmd, err := commands.NewUploadDocumentCommand(actor, documentID, commands.DocumentMeta{
		RelocationID: relocationID,
		Name:         name,
		Type:         docType,
		Description:  ctx.FormValue("description"),
	}, src)
	if err != nil {
		return err
	}

	if err = s.commands.UploadDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondDocument(ctx, http.StatusCreated, actor, documentID)
}

// GetDocument handles GET /api/v1/documents/{id}.
func (s *Server) GetDocument(ctx echo.Context, id servers.Id) error {
	documentID, err := kernelID(id)
	if err != nil {
		return err
	}

	return s.respondDocument(ctx, http.StatusOK, actorFrom(ctx), documentID)
}

// DeleteDocument handles DELETE /api/v1/documents/{id}.
func (s *Server) DeleteDocument(ctx echo.Context, id servers.Id) error {
	documentID, err := kernelID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteDocumentCommand(actorFrom(ctx), documentID)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DownloadDocument handles GET /api/v1/documents/{id}/file.
func (s *Server) DownloadDocument(ctx echo.Context, id servers.Id) error {
	documentID, err := kernelID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDocumentQuery(actorFrom(ctx), documentID)
	if err != nil {
		return err
	}

	file, err := s.queries.GetDocumentFile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	defer file.Content.Close()

	ctx.Response().Header().Set(
		echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}),
	)
	return ctx.Stream(http.StatusOK, echo.MIMEOctetStream, file.Content)
}

func (s *Server) respondDocument(ctx echo.Context, status int, actor services.Actor, id kernel.UUID) error {
	query, err := queries.NewGetDocumentQuery(actor, id)
	if err != nil {
		return err
	}

	res, err := s.queries.GetDocument.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(status, toDocument(res))
}
