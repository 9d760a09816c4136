package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List jobs
// @Description  List job postings, newest first, with optional filters. Repeat opportunityType, workplaceType and skills to select several values.
// @Tags         jobs
// @Produce      json
// @Param        showOpenOnly     query     string    false  "Only open postings when exactly \"true\""
// @Param        opportunityType  query     []string  false  "Opportunity types"  collectionFormat(multi)
// @Param        workplaceType    query     []string  false  "Workplace types"    collectionFormat(multi)
// @Param        locations        query     string    false  "Location substring"
// @Param        industry         query     string    false  "Industry substring"
// @Param        search           query     string    false  "Matches title, company, locations or industry"
// @Param        salaryMin        query     number    false  "Salary range lower bound"
// @Param        salaryMax        query     number    false  "Salary range upper bound"
// @Param        salaryCurrency   query     string    false  "Salary currency"
// @Param        salaryType       query     string    false  "per year, per month or per hour"
// @Param        skills           query     []string  false  "Required skills"  collectionFormat(multi)
// @Param        experience       query     string    false  "Fresher or Experienced"
// @Success      200  {array}   domain.Job
// @Failure      400  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var req ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(bindingError(err, "Invalid query parameters"))
		return
	}
	params, err := req.toParams()
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, jobs)
}

// GetDetails godoc
// @Summary      Get a job
// @Description  Get one job posting with its salary and requirements
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, job)
}

// Create godoc
// @Summary      Create a job
// @Description  Create a job posting together with its salary and requirements
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  domain.Job
// @Failure      400  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	in, ok := bindJobRequest(c)
	if !ok {
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, job)
}

// Update godoc
// @Summary      Update a job
// @Description  Replace a job posting, its salary and its requirements. isOpen keeps its current value when omitted.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      200  {object}  domain.Job
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindJobRequest(c)
	if !ok {
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Delete a job posting along with its salary and requirements
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.MessageBody
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Job removed")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return 0, false
	}
	return id, true
}

// bindJobRequest decodes and validates the posting form. A missing
// application link is reported before any other field problem.
func bindJobRequest(c *gin.Context) (*domain.JobInput, bool) {
	var req JobRequest
	err := c.ShouldBindJSON(&req)

	var verrs validator.ValidationErrors
	if err != nil && !errors.As(err, &verrs) {
		c.Error(apperror.BadRequest("Invalid request body"))
		return nil, false
	}
	if strings.TrimSpace(req.ApplicationLink) == "" {
		c.Error(apperror.BadRequest("Application link is required"))
		return nil, false
	}
	if err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return nil, false
	}

	in, err := req.toInput()
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return nil, false
	}
	return in, true
}

func bindingError(err error, fallback string) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}
	return apperror.BadRequest(fallback)
}
