package validation

// maxInt4 is the largest value an INTEGER column holds
const maxInt4 = "2147483647"

// JobRules apply to both the job form and /api/jobs
var JobRules = RuleSet{
	{Field: "job_title", Kind: String, Required: true, Tag: "required"},
	{Field: "team_leader_id", Kind: Int, Required: true, Tag: "gte=0"},
	{Field: "work_size", Kind: Int, Required: true, Tag: "gte=0,lte=" + maxInt4},
	{Field: "collaborators", Kind: String, Required: true},
	{Field: "is_finished", Kind: Bool, Required: true},
	{Field: "hazard_category_id", Kind: Int, Required: true, Tag: "gte=1"},
}

// UserRules apply to /api/users
var UserRules = RuleSet{
	{Field: "surname", Kind: String, Required: true},
	{Field: "name", Kind: String, Required: true},
	{Field: "age", Kind: Int, Required: true, Tag: "gte=0,lte=" + maxInt4},
	{Field: "position", Kind: String, Required: true},
	{Field: "speciality", Kind: String, Required: true},
	{Field: "address", Kind: String, Required: true},
	{Field: "email", Kind: String, Required: true, Tag: "required,email"},
	{Field: "hashed_password", Kind: String, Required: true, Tag: "required"},
	{Field: "city_from", Kind: String},
}

// RegisterRules apply to the registration form
var RegisterRules = RuleSet{
	{Field: "email", Kind: String, Required: true, Tag: "required,email"},
	{Field: "password", Kind: String, Required: true, Tag: "required"},
	{Field: "password_again", Kind: String, Required: true, Tag: "required", EqualTo: "password", Message: "Passwords do not match"},
	{Field: "name", Kind: String, Required: true, Tag: "required"},
	{Field: "surname", Kind: String, Required: true, Tag: "required"},
	{Field: "city_from", Kind: String},
}

// LoginRules apply to the login form
var LoginRules = RuleSet{
	{Field: "email", Kind: String, Required: true, Tag: "required,email"},
	{Field: "password", Kind: String, Required: true, Tag: "required"},
	{Field: "remember_me", Kind: Bool},
}

// DepartmentRules apply to the department form
var DepartmentRules = RuleSet{
	{Field: "title", Kind: String, Required: true, Tag: "required"},
	{Field: "chief_id", Kind: Int, Required: true, Tag: "gte=0"},
	{Field: "members", Kind: String, Required: true},
	{Field: "email", Kind: String, Required: true, Tag: "required,email"},
}
