package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/attendly/worktime-backend-go/internal/domain/workday"
	"github.com/attendly/worktime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkDayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Overtime(w http.ResponseWriter, r *http.Request)
	Delays(w http.ResponseWriter, r *http.Request)
	Vacations(w http.ResponseWriter, r *http.Request)
	SickLeaves(w http.ResponseWriter, r *http.Request)
	Delegations(w http.ResponseWriter, r *http.Request)
	Deficits(w http.ResponseWriter, r *http.Request)
	ToAcceptByEmployee(w http.ResponseWriter, r *http.Request)
	ToAcceptByDepartment(w http.ResponseWriter, r *http.Request)
	Accepted(w http.ResponseWriter, r *http.Request)
	Rejected(w http.ResponseWriter, r *http.Request)
	AcceptedByDepartment(w http.ResponseWriter, r *http.Request)
	RejectedByDepartment(w http.ResponseWriter, r *http.Request)
	SummaryByEmployee(w http.ResponseWriter, r *http.Request)
	SummaryByDepartment(w http.ResponseWriter, r *http.Request)
}

type workDayHandlerImpl struct {
	workDayService workday.WorkDayService
}

func NewWorkDayHandler(workDayService workday.WorkDayService) WorkDayHandler {
	return &workDayHandlerImpl{
		workDayService: workDayService,
	}
}

// parseRangeQuery reads optional from/to query parameters, YYYY-MM-DD.
func parseRangeQuery(r *http.Request) (from, to *time.Time, ok bool) {
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, nil, false
		}
		from = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, nil, false
		}
		to = &t
	}
	return from, to, true
}

// requireRangeQuery reads mandatory from/to query parameters.
func requireRangeQuery(r *http.Request) (from, to time.Time, ok bool) {
	fromPtr, toPtr, ok := parseRangeQuery(r)
	if !ok || fromPtr == nil || toPtr == nil {
		return time.Time{}, time.Time{}, false
	}
	return *fromPtr, *toPtr, true
}

// Create implements WorkDayHandler.
func (h *workDayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workday.CreateWorkDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workDayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Workday created", result)
}

// Start implements WorkDayHandler.
func (h *workDayHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.workDayService.StartDay(r.Context(), id, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// End implements WorkDayHandler.
func (h *workDayHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.workDayService.EndDay(r.Context(), id, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Decide implements WorkDayHandler.
func (h *workDayHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req workday.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workDayService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee implements WorkDayHandler.
func (h *workDayHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	from, to, ok := parseRangeQuery(r)
	if !ok {
		response.BadRequest(w, "from/to must be valid dates in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.workDayService.ListByEmployee(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workDayHandlerImpl) filteredByEmployee(w http.ResponseWriter, r *http.Request, build func(filter *workday.WorkDayFilter)) {
	employeeID := chi.URLParam(r, "employeeID")
	from, to, ok := parseRangeQuery(r)
	if !ok {
		response.BadRequest(w, "from/to must be valid dates in YYYY-MM-DD format", nil)
		return
	}

	filter := workday.WorkDayFilter{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
	}
	build(&filter)

	result, err := h.workDayService.ListFiltered(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overtime implements WorkDayHandler.
func (h *workDayHandlerImpl) Overtime(w http.ResponseWriter, r *http.Request) {
	h.filteredByEmployee(w, r, func(f *workday.WorkDayFilter) { f.Overhours = true })
}

// Delays implements WorkDayHandler.
func (h *workDayHandlerImpl) Delays(w http.ResponseWriter, r *http.Request) {
	h.filteredByEmployee(w, r, func(f *workday.WorkDayFilter) { f.Delay = true })
}

// Vacations implements WorkDayHandler.
func (h *workDayHandlerImpl) Vacations(w http.ResponseWriter, r *http.Request) {
	h.filteredByEmployee(w, r, func(f *workday.WorkDayFilter) { f.Vacation = true })
}

// SickLeaves implements WorkDayHandler.
func (h *workDayHandlerImpl) SickLeaves(w http.ResponseWriter, r *http.Request) {
	h.filteredByEmployee(w, r, func(f *workday.WorkDayFilter) { f.SickLeave = true })
}

// Delegations implements WorkDayHandler.
func (h *workDayHandlerImpl) Delegations(w http.ResponseWriter, r *http.Request) {
	h.filteredByEmployee(w, r, func(f *workday.WorkDayFilter) { f.Delegation = true })
}

// Deficits implements WorkDayHandler.
func (h *workDayHandlerImpl) Deficits(w http.ResponseWriter, r *http.Request) {
	h.filteredByEmployee(w, r, func(f *workday.WorkDayFilter) { f.DeficitOnly = true })
}

// ToAcceptByEmployee implements WorkDayHandler.
func (h *workDayHandlerImpl) ToAcceptByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	from, to, ok := parseRangeQuery(r)
	if !ok {
		response.BadRequest(w, "from/to must be valid dates in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.workDayService.ToAcceptByEmployee(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ToAcceptByDepartment implements WorkDayHandler.
func (h *workDayHandlerImpl) ToAcceptByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")

	result, err := h.workDayService.ToAcceptByDepartment(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Accepted implements WorkDayHandler.
func (h *workDayHandlerImpl) Accepted(w http.ResponseWriter, r *http.Request) {
	h.decided(w, r, workday.ApprovalAccepted)
}

// Rejected implements WorkDayHandler.
func (h *workDayHandlerImpl) Rejected(w http.ResponseWriter, r *http.Request) {
	h.decided(w, r, workday.ApprovalRejected)
}

func (h *workDayHandlerImpl) decided(w http.ResponseWriter, r *http.Request, approval workday.ApprovalStatus) {
	employeeID := chi.URLParam(r, "employeeID")
	from, to, ok := parseRangeQuery(r)
	if !ok {
		response.BadRequest(w, "from/to must be valid dates in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.workDayService.Decided(r.Context(), employeeID, approval, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AcceptedByDepartment implements WorkDayHandler.
func (h *workDayHandlerImpl) AcceptedByDepartment(w http.ResponseWriter, r *http.Request) {
	h.decidedByDepartment(w, r, workday.ApprovalAccepted)
}

// RejectedByDepartment implements WorkDayHandler.
func (h *workDayHandlerImpl) RejectedByDepartment(w http.ResponseWriter, r *http.Request) {
	h.decidedByDepartment(w, r, workday.ApprovalRejected)
}

func (h *workDayHandlerImpl) decidedByDepartment(w http.ResponseWriter, r *http.Request, approval workday.ApprovalStatus) {
	departmentID := chi.URLParam(r, "departmentID")
	from, to, ok := parseRangeQuery(r)
	if !ok {
		response.BadRequest(w, "from/to must be valid dates in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.workDayService.ListFiltered(r.Context(), workday.WorkDayFilter{
		DepartmentID: departmentID,
		From:         from,
		To:           to,
		Approval:     &approval,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SummaryByEmployee implements WorkDayHandler.
func (h *workDayHandlerImpl) SummaryByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	from, to, ok := requireRangeQuery(r)
	if !ok {
		response.BadRequest(w, "from and to are required, YYYY-MM-DD", nil)
		return
	}

	result, err := h.workDayService.SummaryByEmployee(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SummaryByDepartment implements WorkDayHandler.
func (h *workDayHandlerImpl) SummaryByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	from, to, ok := requireRangeQuery(r)
	if !ok {
		response.BadRequest(w, "from and to are required, YYYY-MM-DD", nil)
		return
	}

	result, err := h.workDayService.SummaryByDepartment(r.Context(), departmentID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
