package handlers

import (
	"errors"
	"io"
	"net/http"

	"battery_dashboard/internal/models"
	"battery_dashboard/internal/predictor"
	"battery_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errInvalidBodyPref = "invalid body: "
	errInternal        = "internal error"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// wizardErrorStatus maps service and predictor errors onto HTTP codes.
func wizardErrorStatus(err error) int {
	var f *predictor.Failure
	switch {
	case errors.As(err, &f):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrOutOfRange), errors.Is(err, service.ErrEmptyEdit):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownField):
		return http.StatusNotFound
	case errors.Is(err, service.ErrWrongStep),
		errors.Is(err, service.ErrCallInFlight),
		errors.Is(err, service.ErrNoPrediction),
		errors.Is(err, service.ErrNoLifespan),
		errors.Is(err, service.ErrResultDiscarded):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidUsage), errors.Is(err, service.ErrHorizonTooLong):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondWizardError writes the error together with the (unchanged) wizard.
func (h *Handler) respondWizardError(c *gin.Context, logKey string, snap models.WizardSnapshot, err error) {
	code := wizardErrorStatus(err)
	resp := gin.H{"error": err.Error(), "wizard": snap}

	var f *predictor.Failure
	if errors.As(err, &f) {
		resp["error"] = f.Reason
		resp["kind"] = f.Kind
	}
	if code == http.StatusInternalServerError {
		resp["error"] = errInternal
	}
	if h.log != nil {
		h.log.Infow(logKey, "user_id", currentUser(c), "status", code, "err", err)
	}
	c.JSON(code, resp)
}

// ImpedanceRequest is the optional body of POST /wizard/predict.
type ImpedanceRequest struct {
	// Ohmic resistance in ohms
	Re *float64 `json:"re" binding:"required" example:"0.05"`
	// Charge-transfer resistance in ohms
	Rct *float64 `json:"rct" binding:"required" example:"0.12"`
}

// UsageRequest is the optional body of POST /wizard/lifespan.
type UsageRequest struct {
	DistancePerCycle     *float64 `json:"distance_per_cycle" binding:"required" example:"200"`
	AverageDailyDistance *float64 `json:"average_daily_distance" binding:"required" example:"60"`
}

// bindOptionalJSON binds the request body into obj and reports whether there was one.
// Chunked bodies have an unknown length, so only an empty stream counts as absent.
func bindOptionalJSON(c *gin.Context, obj any) (bool, error) {
	body := c.Request.Body
	if body == nil || body == http.NoBody || c.Request.ContentLength == 0 {
		return false, nil
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Get wizard
// @Description  Step, busy flag, inputs, stored results and their presentation.
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  models.WizardSnapshot
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/wizard [get]
// @Security     BearerAuth
func (h *Handler) getWizard(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Snapshot(currentUser(c)))
}

// @Summary      Edit an input
// @Description  Text and value edits outside the field's range are not committed; the text stays pending.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        name  path  string             true  "Field"  Enums(re,rct,distance_per_cycle,average_daily_distance)
// @Param        body  body  service.FieldEdit  true  "Edit"
// @Success      200   {object}  map[string]interface{}  "field, committed, state"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/wizard/fields/{name} [patch]
// @Security     BearerAuth
func (h *Handler) editField(c *gin.Context) {
	var edit service.FieldEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	name := c.Param("name")
	st, committed, err := h.services.EditField(currentUser(c), name, edit)
	if err != nil {
		c.JSON(wizardErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"field":     name,
		"committed": committed,
		"state":     st,
	})
}

// @Summary      Predict RUL
// @Description  Without a body the current re/rct inputs are used.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body  ImpedanceRequest  false  "Impedance"
// @Success      200   {object}  models.WizardSnapshot
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]interface{}
// @Failure      502   {object}  map[string]interface{}  "error, kind, wizard"
// @Router       /api/v1/wizard/predict [post]
// @Security     BearerAuth
func (h *Handler) predict(c *gin.Context) {
	var (
		in  *models.ImpedanceInput
		req ImpedanceRequest
	)
	present, err := bindOptionalJSON(c, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if present {
		in = &models.ImpedanceInput{Re: *req.Re, Rct: *req.Rct}
	}
	snap, err := h.services.SubmitImpedance(c.Request.Context(), currentUser(c), in)
	if err != nil {
		h.respondWizardError(c, "wizard_predict_failed", snap, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Estimate lifespan
// @Description  Uses the stored RUL. Without a body the current usage inputs are used.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body  UsageRequest  false  "Usage"
// @Success      200   {object}  models.WizardSnapshot
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]interface{}
// @Failure      502   {object}  map[string]interface{}  "error, kind, wizard"
// @Router       /api/v1/wizard/lifespan [post]
// @Security     BearerAuth
func (h *Handler) estimateLifespan(c *gin.Context) {
	var (
		in  *models.UsageInput
		req UsageRequest
	)
	present, err := bindOptionalJSON(c, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if present {
		in = &models.UsageInput{DistancePerCycle: *req.DistancePerCycle, AverageDailyDistance: *req.AverageDailyDistance}
	}
	snap, err := h.services.SubmitUsage(c.Request.Context(), currentUser(c), in)
	if err != nil {
		h.respondWizardError(c, "wizard_lifespan_failed", snap, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Back to prediction
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  models.WizardSnapshot
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]interface{}
// @Router       /api/v1/wizard/back [post]
// @Security     BearerAuth
func (h *Handler) back(c *gin.Context) {
	snap, err := h.services.Back(c.Request.Context(), currentUser(c))
	if err != nil {
		h.respondWizardError(c, "wizard_back_failed", snap, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Reset wizard
// @Description  Clears both results; a call still in flight is discarded when it returns.
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  models.WizardSnapshot
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/wizard/reset [post]
// @Security     BearerAuth
func (h *Handler) reset(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Reset(c.Request.Context(), currentUser(c)))
}

// @Summary      Lifespan chart data
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, points"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/v1/wizard/chart [get]
// @Security     BearerAuth
func (h *Handler) getChart(c *gin.Context) {
	points, err := h.services.LifespanChart(currentUser(c))
	if err != nil {
		c.JSON(wizardErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(points), "points": points})
}

// @Summary      Per-cycle health curve
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, points"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/v1/wizard/health-curve [get]
// @Security     BearerAuth
func (h *Handler) getHealthCurve(c *gin.Context) {
	points, err := h.services.HealthCurve(currentUser(c))
	if err != nil {
		c.JSON(wizardErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(points), "points": points})
}

// @Summary      Predictor settings
// @Description  Effective prediction service URL, where it came from, and the input profile.
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  service.Settings
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/wizard/config [get]
// @Security     BearerAuth
func (h *Handler) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Settings())
}
