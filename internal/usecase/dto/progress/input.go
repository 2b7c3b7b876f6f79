package progressdto

type SubmitReportInput struct {
	OrderID     string
	BoosterID   string
	Progress    int32
	Description string
	Attachments []string
}
