package appearance

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/HerbHall/authdeck/internal/layout"
	"github.com/HerbHall/authdeck/internal/theme"
	"github.com/HerbHall/authdeck/internal/theme/catalog"
	"github.com/HerbHall/authdeck/internal/theme/importer"
	"github.com/HerbHall/authdeck/internal/theme/transition"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

const problemType = "https://authdeck.dev/problems/appearance-error"

// ProblemDetail represents an RFC 7807 error response for swagger documentation.
// @Description RFC 7807 Problem Details error response.
type ProblemDetail struct {
	Type   string `json:"type" example:"https://authdeck.dev/problems/appearance-error"`
	Title  string `json:"title" example:"Bad Request"`
	Status int    `json:"status" example:"400"`
	Detail string `json:"detail" example:"unknown preset"`
}

// ProfileResolver returns the profile a request acts on.
type ProfileResolver func(r *http.Request) string

// PresetSummary is a catalog entry as listed by the API.
// @Description A preset with its preview swatches.
type PresetSummary struct {
	ID          string   `json:"id" example:"rose"`
	DisplayName string   `json:"display_name" example:"Rose"`
	Family      string   `json:"family" example:"shadcn"`
	Swatches    []string `json:"swatches"`
}

// PresetRequest selects a preset by family and id.
type PresetRequest struct {
	Family  string `json:"family,omitempty" validate:"omitempty,oneof=shadcn tweakcn" example:"shadcn"`
	ID      string `json:"id" validate:"required" example:"rose"`
	Variant string `json:"variant,omitempty" validate:"omitempty,oneof=light dark" example:"dark"`
}

// RandomRequest picks a random preset from a family.
type RandomRequest struct {
	Family  string `json:"family" validate:"required,oneof=shadcn tweakcn" example:"tweakcn"`
	Variant string `json:"variant,omitempty" validate:"omitempty,oneof=light dark"`
}

// RandomResponse reports the chosen preset alongside the new state.
type RandomResponse struct {
	Preset   PresetSummary `json:"preset"`
	Snapshot Snapshot      `json:"snapshot"`
}

// OverrideRequest sets one brand color.
type OverrideRequest struct {
	Value string `json:"value" validate:"required" example:"#e11d48"`
}

// RadiusRequest selects a corner radius.
type RadiusRequest struct {
	Radius string `json:"radius" validate:"required" example:"0.75rem"`
}

// VariantRequest switches light/dark. An empty variant toggles the current
// one. Trigger carries the pointer position for the circular reveal.
type VariantRequest struct {
	Variant string              `json:"variant,omitempty" validate:"omitempty,oneof=light dark" example:"dark"`
	Trigger *transition.Trigger `json:"trigger,omitempty"`
}

// LayoutRequest is a partial sidebar configuration update.
type LayoutRequest struct {
	Variant     *string `json:"variant,omitempty" validate:"omitempty,oneof=sidebar floating inset" example:"inset"`
	Collapsible *string `json:"collapsible,omitempty" validate:"omitempty,oneof=offcanvas icon none" example:"icon"`
	Side        *string `json:"side,omitempty" validate:"omitempty,oneof=left right" example:"right"`
}

func (r LayoutRequest) patch() layout.Patch {
	var p layout.Patch
	if r.Variant != nil {
		v := layout.Variant(*r.Variant)
		p.Variant = &v
	}
	if r.Collapsible != nil {
		c := layout.Collapsible(*r.Collapsible)
		p.Collapsible = &c
	}
	if r.Side != nil {
		s := layout.Side(*r.Side)
		p.Side = &s
	}
	return p
}

// SidebarResponse reports the sidebar state after a toggle.
type SidebarResponse struct {
	Open  bool   `json:"open"`
	State string `json:"state" example:"collapsed"`
}

// Handler serves the appearance API.
type Handler struct {
	registry *Registry
	profile  ProfileResolver
	logger   *zap.Logger
}

// NewHandler creates a new appearance handler. A nil resolver serves
// DefaultProfile for every request.
func NewHandler(registry *Registry, profile ProfileResolver, logger *zap.Logger) *Handler {
	if profile == nil {
		profile = func(*http.Request) string { return DefaultProfile }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{registry: registry, profile: profile, logger: logger}
}

// RegisterRoutes registers appearance API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/appearance", h.handleGetSnapshot)
	mux.HandleFunc("GET /api/v1/appearance/presets", h.handleListPresets)
	mux.HandleFunc("GET /api/v1/appearance/radii", h.handleListRadii)
	mux.HandleFunc("GET /api/v1/appearance/brand-colors", h.handleListBrandColors)
	mux.HandleFunc("PUT /api/v1/appearance/theme/preset", h.handleApplyPreset)
	mux.HandleFunc("POST /api/v1/appearance/theme/random", h.handleApplyRandom)
	mux.HandleFunc("POST /api/v1/appearance/theme/import", h.handleImport)
	mux.HandleFunc("PUT /api/v1/appearance/theme/overrides/{name}", h.handleSetOverride)
	mux.HandleFunc("DELETE /api/v1/appearance/theme/overrides/{name}", h.handleDeleteOverride)
	mux.HandleFunc("DELETE /api/v1/appearance/theme/overrides", h.handleClearOverrides)
	mux.HandleFunc("PUT /api/v1/appearance/theme/radius", h.handleSetRadius)
	mux.HandleFunc("PUT /api/v1/appearance/theme/variant", h.handleSetVariant)
	mux.HandleFunc("POST /api/v1/appearance/reset", h.handleReset)
	mux.HandleFunc("PATCH /api/v1/appearance/layout", h.handleUpdateLayout)
	mux.HandleFunc("POST /api/v1/appearance/layout/sidebar/toggle", h.handleToggleSidebar)
	mux.HandleFunc("GET /api/v1/appearance/theme.css", h.handleThemeCSS)
	mux.HandleFunc("GET /api/v1/appearance/export", h.handleExport)
}

func (h *Handler) session(r *http.Request) *Session {
	return h.registry.Session(r.Context(), h.profile(r))
}

// handleGetSnapshot returns the caller's theme and layout state.
//
//	@Summary		Get appearance
//	@Description	Returns the theme, layout and rendered document state of the caller's profile.
//	@Tags			appearance
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	Snapshot
//	@Router			/appearance [get]
func (h *Handler) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session(r).Snapshot())
}

// handleListPresets lists catalog presets with their swatches.
//
//	@Summary		List presets
//	@Description	Lists the presets of one family, or of both when family is omitted.
//	@Tags			appearance
//	@Produce		json
//	@Param			family	query		string			false	"Preset family"	Enums(shadcn, tweakcn)
//	@Success		200		{array}		PresetSummary
//	@Failure		404		{object}	ProblemDetail	"Unknown family"
//	@Router			/appearance/presets [get]
func (h *Handler) handleListPresets(w http.ResponseWriter, r *http.Request) {
	families := []*catalog.Family{catalog.Shadcn(), catalog.Tweakcn()}
	if name := r.URL.Query().Get("family"); name != "" {
		f, ok := catalog.ByName(name)
		if !ok {
			writeProblem(w, http.StatusNotFound, fmt.Sprintf("unknown preset family %q", name))
			return
		}
		families = []*catalog.Family{f}
	}

	out := make([]PresetSummary, 0)
	for _, f := range families {
		for _, p := range f.All() {
			out = append(out, summarize(f.Name(), p))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// handleListRadii lists the selectable corner radii.
//
//	@Summary		List radii
//	@Tags			appearance
//	@Produce		json
//	@Success		200	{array}	catalog.RadiusOption
//	@Router			/appearance/radii [get]
func (h *Handler) handleListRadii(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.RadiusOptions())
}

// handleListBrandColors lists the variables that accept color overrides.
//
//	@Summary		List brand colors
//	@Tags			appearance
//	@Produce		json
//	@Success		200	{array}	catalog.BrandColor
//	@Router			/appearance/brand-colors [get]
func (h *Handler) handleListBrandColors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.BrandColors())
}

// handleApplyPreset selects a catalog preset.
//
//	@Summary		Apply preset
//	@Description	Selects a preset. The variant defaults to the current one. Color overrides are kept.
//	@Tags			appearance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		PresetRequest	true	"Preset selection"
//	@Success		200		{object}	Snapshot
//	@Failure		400		{object}	ProblemDetail	"Validation error"
//	@Failure		404		{object}	ProblemDetail	"Unknown preset"
//	@Router			/appearance/theme/preset [put]
func (h *Handler) handleApplyPreset(w http.ResponseWriter, r *http.Request) {
	var req PresetRequest
	if !decodeValid(w, r, &req) {
		return
	}
	s := h.session(r)
	v := h.variantOr(s, req.Variant)

	var err error
	switch req.Family {
	case "", catalog.FamilyShadcn:
		err = s.Theme.ApplyPreset(r.Context(), req.ID, v)
	default:
		p, ok := catalog.Tweakcn().Lookup(req.ID)
		if !ok {
			err = fmt.Errorf("%w: %q", theme.ErrUnknownPreset, req.ID)
			break
		}
		err = s.Theme.ApplyAlternatePreset(r.Context(), p, v)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// handleApplyRandom applies a random preset from a family.
//
//	@Summary		Apply random preset
//	@Tags			appearance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		RandomRequest	true	"Family to pick from"
//	@Success		200		{object}	RandomResponse
//	@Failure		400		{object}	ProblemDetail	"Validation error"
//	@Router			/appearance/theme/random [post]
func (h *Handler) handleApplyRandom(w http.ResponseWriter, r *http.Request) {
	var req RandomRequest
	if !decodeValid(w, r, &req) {
		return
	}
	s := h.session(r)
	p, err := s.Theme.ApplyRandomPreset(r.Context(), req.Family, h.variantOr(s, req.Variant))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RandomResponse{
		Preset:   summarize(req.Family, p),
		Snapshot: s.Snapshot(),
	})
}

// handleImport parses and applies a theme document.
//
//	@Summary		Import theme
//	@Description	Parses a JSON, YAML or CSS theme document and applies it. The format comes from the format query parameter, then Content-Type, then content sniffing.
//	@Tags			appearance
//	@Accept			json,plain
//	@Produce		json
//	@Security		BearerAuth
//	@Param			format	query		string			false	"Document format"	Enums(json, yaml, css)
//	@Param			name	query		string			false	"Name used when the document has none"
//	@Param			variant	query		string			false	"Variant to apply"	Enums(light, dark)
//	@Success		200		{object}	Snapshot
//	@Failure		400		{object}	ProblemDetail	"Invalid theme"
//	@Failure		413		{object}	ProblemDetail	"Document too large"
//	@Router			/appearance/theme/import [post]
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := importer.Format(q.Get("format"))
	switch format {
	case "", importer.FormatJSON, importer.FormatYAML, importer.FormatCSS:
	default:
		writeProblem(w, http.StatusBadRequest, fmt.Sprintf("format must be one of [json yaml css], got %q", format))
		return
	}
	if format == "" {
		format = importer.FormatFromContentType(r.Header.Get("Content-Type"))
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, importer.MaxSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeProblem(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("theme document exceeds %d bytes", importer.MaxSize))
			return
		}
		writeProblem(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	t, err := importer.Parse(data, importer.Options{Format: format, Name: q.Get("name"), Source: "upload"})
	if err != nil {
		h.writeError(w, err)
		return
	}

	s := h.session(r)
	v, err := h.parseVariantOr(s, q.Get("variant"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := s.Theme.ApplyImportedTheme(r.Context(), t, v); err != nil {
		h.writeError(w, err)
		return
	}
	h.logger.Info("theme imported",
		zap.String("profile", s.Profile),
		zap.String("theme_id", t.ID),
		zap.String("format", string(format)),
	)
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// handleSetOverride sets one brand color override.
//
//	@Summary		Set color override
//	@Tags			appearance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path		string			true	"Brand variable, with or without the leading --"
//	@Param			request	body		OverrideRequest	true	"Color value"
//	@Success		200		{object}	Snapshot
//	@Failure		400		{object}	ProblemDetail	"Invalid override"
//	@Router			/appearance/theme/overrides/{name} [put]
func (h *Handler) handleSetOverride(w http.ResponseWriter, r *http.Request) {
	var req OverrideRequest
	if !decodeValid(w, r, &req) {
		return
	}
	s := h.session(r)
	if err := s.Theme.SetColorOverride(r.Context(), variableName(r.PathValue("name")), req.Value); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// handleDeleteOverride removes one brand color override.
//
//	@Summary		Delete color override
//	@Tags			appearance
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path		string	true	"Brand variable"
//	@Success		200		{object}	Snapshot
//	@Failure		400		{object}	ProblemDetail	"Not a brand variable"
//	@Router			/appearance/theme/overrides/{name} [delete]
func (h *Handler) handleDeleteOverride(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	if err := s.Theme.SetColorOverride(r.Context(), variableName(r.PathValue("name")), ""); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// handleClearOverrides removes every color override.
//
//	@Summary		Clear color overrides
//	@Tags			appearance
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	Snapshot
//	@Router			/appearance/theme/overrides [delete]
func (h *Handler) handleClearOverrides(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	if err := s.Theme.ClearColorOverrides(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// handleSetRadius selects the corner radius.
//
//	@Summary		Set radius
//	@Tags			appearance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		RadiusRequest	true	"Radius"
//	@Success		200		{object}	Snapshot
//	@Failure		400		{object}	ProblemDetail	"Invalid radius"
//	@Router			/appearance/theme/radius [put]
func (h *Handler) handleSetRadius(w http.ResponseWriter, r *http.Request) {
	var req RadiusRequest
	if !decodeValid(w, r, &req) {
		return
	}
	s := h.session(r)
	if err := s.Theme.SetRadius(r.Context(), catalog.Radius(req.Radius)); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// handleSetVariant switches between light and dark.
//
//	@Summary		Set variant
//	@Description	Sets the variant, or toggles it when variant is omitted. A trigger requests the circular reveal on connected clients that support it.
//	@Tags			appearance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		VariantRequest	true	"Variant and optional pointer trigger"
//	@Success		200		{object}	Snapshot
//	@Failure		400		{object}	ProblemDetail	"Validation error"
//	@Router			/appearance/theme/variant [put]
func (h *Handler) handleSetVariant(w http.ResponseWriter, r *http.Request) {
	var req VariantRequest
	if !decodeValid(w, r, &req) {
		return
	}
	s := h.session(r)
	var err error
	if req.Variant == "" {
		_, err = s.Theme.ToggleVariant(r.Context(), req.Trigger)
	} else {
		err = s.Theme.SetVariant(r.Context(), theme.Variant(req.Variant), req.Trigger)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// handleReset restores the factory default theme and layout.
//
//	@Summary		Reset appearance
//	@Description	Restores the default theme and layout and deletes the persisted preferences.
//	@Tags			appearance
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	Snapshot
//	@Router			/appearance/reset [post]
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	if err := s.Reset(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// handleUpdateLayout merges a partial sidebar configuration.
//
//	@Summary		Update layout
//	@Description	Updates the given sidebar fields. Selecting icon collapse while expanded also collapses the sidebar.
//	@Tags			appearance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		LayoutRequest	true	"Fields to update"
//	@Success		200		{object}	Snapshot
//	@Failure		400		{object}	ProblemDetail	"Validation error"
//	@Router			/appearance/layout [patch]
func (h *Handler) handleUpdateLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if !decodeValid(w, r, &req) {
		return
	}
	p := req.patch()
	if p.Empty() {
		writeProblem(w, http.StatusBadRequest, "at least one of variant, collapsible or side is required")
		return
	}
	s := h.session(r)
	if _, err := s.Layout.UpdateConfig(r.Context(), p); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// handleToggleSidebar flips the sidebar between expanded and collapsed.
//
//	@Summary		Toggle sidebar
//	@Tags			appearance
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	SidebarResponse
//	@Router			/appearance/layout/sidebar/toggle [post]
func (h *Handler) handleToggleSidebar(w http.ResponseWriter, r *http.Request) {
	ls := h.session(r).Layout
	open := ls.ToggleSidebar(r.Context())
	writeJSON(w, http.StatusOK, SidebarResponse{Open: open, State: ls.Snapshot().State})
}

// handleThemeCSS renders the caller's root element as a stylesheet.
//
//	@Summary		Theme stylesheet
//	@Tags			appearance
//	@Produce		text/css
//	@Security		BearerAuth
//	@Success		200	{string}	string	"CSS"
//	@Router			/appearance/theme.css [get]
func (h *Handler) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	var buf bytes.Buffer
	if err := s.Document.WriteCSS(&buf); err != nil {
		h.logger.Warn("failed to write theme stylesheet", zap.String("profile", s.Profile), zap.Error(err))
		writeProblem(w, http.StatusInternalServerError, "failed to render stylesheet")
		return
	}

	etag := stylesheetETag(buf.Bytes())
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// stylesheetETag is a strong validator over the rendered bytes.
func stylesheetETag(css []byte) string {
	sum := blake2b.Sum256(css)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// handleExport writes the effective theme, overrides included, as an importable document.
//
//	@Summary		Export theme
//	@Tags			appearance
//	@Produce		json,plain
//	@Security		BearerAuth
//	@Param			format	query		string			false	"Document format"	Enums(json, yaml, css)
//	@Success		200		{object}	importer.Theme
//	@Failure		400		{object}	ProblemDetail	"Unsupported format"
//	@Failure		404		{object}	ProblemDetail	"No theme selected"
//	@Router			/appearance/export [get]
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	format := importer.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = importer.FormatJSON
	}
	contentType, ok := exportContentTypes[format]
	if !ok {
		writeProblem(w, http.StatusBadRequest, fmt.Sprintf("format must be one of [json yaml css], got %q", format))
		return
	}

	s := h.session(r)
	t, ok := exportTheme(s.Theme)
	if !ok {
		writeProblem(w, http.StatusNotFound, "no theme selected")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, t.ID, format))
	if err := importer.Write(w, t, format); err != nil {
		h.logger.Warn("failed to write theme export", zap.String("profile", s.Profile), zap.Error(err))
	}
}

var exportContentTypes = map[importer.Format]string{
	importer.FormatJSON: "application/json",
	importer.FormatYAML: "application/yaml",
	importer.FormatCSS:  "text/css; charset=utf-8",
}

// exportTheme resolves both variants of the current source with overrides applied.
func exportTheme(m *theme.Manager) (importer.Theme, bool) {
	src := m.Source()
	if src.Kind == theme.KindNone {
		return importer.Theme{}, false
	}
	overrides := m.Snapshot().Overrides
	return importer.Theme{
		ID:          src.ID,
		Name:        src.Name,
		Description: src.Description,
		Light:       theme.Resolve(src, theme.VariantLight, overrides),
		Dark:        theme.Resolve(src, theme.VariantDark, overrides),
	}, true
}

func (h *Handler) variantOr(s *Session, v string) theme.Variant {
	if v == "" {
		return s.Theme.Snapshot().Variant
	}
	return theme.Variant(v)
}

func (h *Handler) parseVariantOr(s *Session, v string) (theme.Variant, error) {
	if v == "" {
		return s.Theme.Snapshot().Variant, nil
	}
	return theme.ParseVariant(v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, theme.ErrUnknownPreset):
		writeProblem(w, http.StatusNotFound, err.Error())
	case errors.Is(err, theme.ErrInvalidTheme),
		errors.Is(err, theme.ErrInvalidRadius),
		errors.Is(err, theme.ErrInvalidOverride),
		errors.Is(err, theme.ErrInvalidVariant),
		errors.Is(err, layout.ErrInvalidConfig):
		writeProblem(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("appearance request failed", zap.Error(err))
		writeProblem(w, http.StatusInternalServerError, "internal error")
	}
}

func summarize(family string, p catalog.Preset) PresetSummary {
	return PresetSummary{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Family:      family,
		Swatches:    p.Swatches(),
	}
}

// variableName accepts "brand-primary" or "--brand-primary".
func variableName(s string) string {
	if strings.HasPrefix(s, "--") {
		return s
	}
	return "--" + s
}

// decodeValid decodes a JSON body into req and validates it, writing a
// problem response on failure.
func decodeValid(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validateRequest(req); err != nil {
		writeProblem(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProblem writes an RFC 7807 problem response.
func writeProblem(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ProblemDetail{
		Type:   problemType,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}
