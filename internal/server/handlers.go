// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pdiddy/assignment-engine/internal/analyze"
	"github.com/pdiddy/assignment-engine/internal/draft"
	"github.com/pdiddy/assignment-engine/internal/enhance"
	"github.com/pdiddy/assignment-engine/internal/store"
	"github.com/pdiddy/assignment-engine/pkg/types"
)

// String fields are pointers so that a present empty string passes
// "required" while a missing or null field does not.

type analyzeRequest struct {
	AssignmentDetails *string `json:"assignmentDetails" validate:"required"`
	ExternalContent   *string `json:"externalContent"`
}

type analysisPayload struct {
	AssignmentType    *string  `json:"assignmentType" validate:"required"`
	Topics            []string `json:"topics" validate:"required"`
	Requirements      []string `json:"requirements" validate:"required"`
	SuggestedApproach *string  `json:"suggestedApproach" validate:"required"`
	ExternalLinks     []string `json:"externalLinks" validate:"required"`
	CustomPrompt      *string  `json:"customPrompt" validate:"required"`
}

func (p *analysisPayload) result() types.AnalysisResult {
	return types.AnalysisResult{
		AssignmentType:    types.AssignmentType(*p.AssignmentType),
		Topics:            p.Topics,
		Requirements:      p.Requirements,
		SuggestedApproach: *p.SuggestedApproach,
		ExternalLinks:     p.ExternalLinks,
		CustomPrompt:      *p.CustomPrompt,
	}
}

type draftRequest struct {
	AssignmentDetails *string          `json:"assignmentDetails" validate:"required"`
	AnalysisResult    *analysisPayload `json:"analysisResult" validate:"required"`
	ExternalContent   *string          `json:"externalContent"`
}

type enhanceRequest struct {
	Content     *string `json:"content" validate:"required"`
	Instruction *string `json:"instruction" validate:"required"`
}

type enhanceResponse struct {
	Content string `json:"content"`
}

type linkRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type saveDraftRequest struct {
	CourseID       int64   `json:"courseId" validate:"required,gt=0"`
	AssignmentID   int64   `json:"assignmentId" validate:"required,gt=0"`
	AssignmentType string  `json:"assignmentType"`
	Content        *string `json:"content" validate:"required"`
}

// bind decodes the request body into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

func (s *Server) analyzeAssignment(c echo.Context) error {
	var req analyzeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	result := analyze.Analyze(*req.AssignmentDetails, req.ExternalContent)
	AnalysesTotal.WithLabelValues(string(result.AssignmentType)).Inc()
	return c.JSON(http.StatusOK, result)
}

func (s *Server) generateDraft(c echo.Context) error {
	var req draftRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	analysis := req.AnalysisResult.result()
	result := draft.Generate(*req.AssignmentDetails, analysis, req.ExternalContent)
	DraftsGenerated.WithLabelValues(string(analysis.AssignmentType)).Inc()
	return c.JSON(http.StatusOK, result)
}

func (s *Server) enhanceContent(c echo.Context) error {
	var req enhanceRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	RecordEnhancement(*req.Instruction)
	return c.JSON(http.StatusOK, enhanceResponse{Content: enhance.Enhance(*req.Content, *req.Instruction)})
}

func (s *Server) extractLink(c echo.Context) error {
	var req linkRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	page, err := s.links.Fetch(c.Request().Context(), req.URL)
	if err != nil {
		LinkFetchesTotal.WithLabelValues("failed").Inc()
		s.log.WithError(err).WithField("url", req.URL).Warn("link fetch failed")
		return echo.NewHTTPError(http.StatusBadGateway, "could not read link content")
	}
	LinkFetchesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, page)
}

func (s *Server) saveDraft(c echo.Context) error {
	var req saveDraftRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	var label types.AssignmentType
	if req.AssignmentType != "" {
		label = types.ParseAssignmentType(req.AssignmentType)
	}
	d, err := s.drafts.Save(c.Request().Context(), req.CourseID, req.AssignmentID, label, *req.Content)
	if err != nil {
		return s.storeError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (s *Server) listDrafts(c echo.Context) error {
	var opts store.ListOptions
	var err error
	if v := c.QueryParam("courseId"); v != "" {
		if opts.CourseID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "courseId must be an integer")
		}
	}
	if v := c.QueryParam("submitted"); v != "" {
		submitted, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "submitted must be a boolean")
		}
		opts.Submitted = &submitted
	}
	if v := c.QueryParam("limit"); v != "" {
		if opts.MaxResults, err = strconv.Atoi(v); err != nil || opts.MaxResults < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
	}

	drafts, err := s.drafts.List(c.Request().Context(), opts)
	if err != nil {
		return s.storeError(err)
	}
	return c.JSON(http.StatusOK, drafts)
}

func (s *Server) getDraft(c echo.Context) error {
	d, err := s.drafts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.storeError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (s *Server) submitDraft(c echo.Context) error {
	d, err := s.drafts.MarkSubmitted(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.storeError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (s *Server) deleteDraft(c echo.Context) error {
	if err := s.drafts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return s.storeError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// storeError maps store failures to HTTP errors.
func (s *Server) storeError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "draft not found")
	}
	s.log.WithError(err).Error("draft store failure")
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
