package httpapi

import (
	"net/http"
	"strconv"

	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/tutor"
)

type importBody struct {
	Text   string `json:"text"`
	DryRun bool   `json:"dry_run"`
}

type importResult struct {
	DryRun bool                 `json:"dry_run"`
	Drafts []contract.DraftView `json:"drafts"`
	Tasks  []contract.TaskView  `json:"tasks"`
}

type checkInBody struct {
	Stress     float64 `json:"stress"`
	SleepHours float64 `json:"sleep_hours"`
	Energy     float64 `json:"energy"`
	Note       string  `json:"note"`
}

type tutorBody struct {
	Prompt string `json:"prompt"`
	Mode   string `json:"mode"`
	// IncludePlannerContext defaults to true when omitted.
	IncludePlannerContext *bool `json:"include_planner_context"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListTasks serves open tasks, or every task with ?all=true.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	all := false
	if v := r.URL.Query().Get("all"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, r, &contract.ValidationError{Field: "all", Message: "must be a boolean"})
			return
		}
		all = b
	}
	tasks, err := s.svc.Tasks.List(r.Context(), all)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewTaskViews(tasks))
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var body importBody
	if err := decodeBody(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	now := s.opts.Now()
	req := contract.NewParseRequest(body.Text)
	req.DryRun = body.DryRun
	req.Now = &now

	resp, err := s.svc.Import.Import(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	status := http.StatusCreated
	if resp.DryRun || len(resp.Tasks) == 0 {
		status = http.StatusOK
	}
	writeJSON(w, status, importResult{
		DryRun: resp.DryRun,
		Drafts: contract.NewDraftViews(resp.Drafts),
		Tasks:  contract.NewTaskViews(resp.Tasks),
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var body importBody
	if err := decodeBody(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	now := s.opts.Now()
	req := contract.NewParseRequest(body.Text)
	req.Now = &now

	resp, err := s.svc.Import.Preview(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewDraftViews(resp.Drafts))
}

// handlePlan accepts ?mode=normal|light|auto and ?hours=N.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := s.opts.Now()
	req := contract.NewPlanRequest()
	req.Now = &now
	if v := q.Get("mode"); v != "" {
		req.Mode = contract.PlanMode(v)
	}
	if v := q.Get("hours"); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.writeError(w, r, &contract.ValidationError{Field: "hours", Message: "must be a number"})
			return
		}
		req.HoursPerDay = h
	}

	resp, err := s.svc.Plan.Plan(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewPlanView(resp))
}

func (s *Server) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	var body checkInBody
	if err := decodeBody(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	now := s.opts.Now()
	req := contract.NewCheckInRequest(body.Stress, body.SleepHours, body.Energy)
	req.Note = body.Note
	req.Now = &now

	resp, err := s.svc.Wellness.CheckIn(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.NewWellnessView(resp.Log, resp.Result.Tips))
}

func (s *Server) handleLatestWellness(w http.ResponseWriter, r *http.Request) {
	log, err := s.svc.Wellness.Latest(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewWellnessView(log, nil))
}

func (s *Server) handleTutor(w http.ResponseWriter, r *http.Request) {
	var body tutorBody
	if err := decodeBody(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	now := s.opts.Now()
	req := contract.NewTutorRequest(body.Prompt)
	if body.Mode != "" {
		req.Mode = tutor.Mode(body.Mode)
	}
	if body.IncludePlannerContext != nil {
		req.IncludePlannerContext = *body.IncludePlannerContext
	}
	req.Now = &now

	out, err := s.svc.Tutor.Generate(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
