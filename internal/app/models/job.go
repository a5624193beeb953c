package models

// Job is a unit of work led by a team leader
type Job struct {
	ID               int64  `json:"id" db:"id" example:"1"`
	JobTitle         string `json:"job_title" db:"job_title" example:"deployment of residential modules 1 and 2"`
	TeamLeaderID     *int64 `json:"team_leader_id" db:"team_leader_id" example:"1"`
	WorkSize         int    `json:"work_size" db:"work_size" example:"15"`
	Collaborators    string `json:"collaborators" db:"collaborators" example:"2, 3"`
	IsFinished       bool   `json:"is_finished" db:"is_finished" example:"false"`
	HazardCategoryID *int64 `json:"hazard_category_id" db:"hazard_category_id" example:"1"`
}

// OwnerID returns the team leader id, or 0 when the job has none
func (j *Job) OwnerID() int64 {
	if j.TeamLeaderID == nil {
		return 0
	}
	return *j.TeamLeaderID
}
