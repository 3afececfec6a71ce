package server

// GenerateRequest is the payload of POST /api/generate-timetable. Rooms and
// working days are optional; the engine's defaults apply when they are
// absent.
type GenerateRequest struct {
	Rooms       RoomsPayload        `json:"rooms"`
	Departments []DepartmentPayload `json:"departments"`
}

type RoomsPayload struct {
	General []string `json:"general"`
	Labs    []string `json:"labs"`
	NB      []string `json:"nb"`
}

type DepartmentPayload struct {
	Name        string          `json:"name"`
	Program     string          `json:"program"`
	Semester    int             `json:"semester"`
	Section     string          `json:"section"`
	WorkingDays []string        `json:"workingDays"`
	Courses     []CoursePayload `json:"courses"`
}

type CoursePayload struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	CreditHours int    `json:"creditHours"`
	Teacher     string `json:"teacher"`
	Type        string `json:"type"`
}

// TimetableEntry is one placed session in the response, grouped under its
// program key.
type TimetableEntry struct {
	Time    string `json:"time"`
	Day     string `json:"day"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Room    string `json:"room"`
	Teacher string `json:"teacher"`
}

// CourseReportEntry surfaces partial placements so the caller can tell the
// user "N of M sessions scheduled".
type CourseReportEntry struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Semester  int    `json:"semester"`
	Section   string `json:"section"`
	Requested int    `json:"requested"`
	Placed    int    `json:"placed"`
}

type GenerateResponse struct {
	Timetables map[string][]TimetableEntry `json:"timetables"`
	Report     []CourseReportEntry         `json:"report"`
}
