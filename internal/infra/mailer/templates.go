package mailer

import (
	"bytes"
	"html/template"
)

const pickupDisplayLayout = "Monday, January 2, 2006 at 03:04 PM"

const baseStyle = `
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background-color: {{.Accent}}; color: #fff; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
.header h1 { margin: 0; font-size: 24px; }
.content { background-color: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
.details { background-color: #fff; padding: 20px; margin: 20px 0; border-left: 4px solid {{.Accent}}; }
.instructions { background-color: #fff3cd; padding: 15px; margin: 20px 0; border-left: 4px solid #ffc107; }
.footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
`

var bodyTemplate = template.Must(template.New("body").Parse(`<!DOCTYPE html>
<html>
<head><style>` + baseStyle + `</style></head>
<body>
<div class="container">
  <div class="header">
    <h1>{{.Title}}</h1>
    <p>{{.Company}} Pickup Appointment</p>
  </div>
  <div class="content">
    <p>{{.Lead}}</p>
    <div class="details">
      <p><strong>Order Number:</strong> {{.OrderNumber}}</p>
      {{- if .PreviousTime}}
      <p><strong>Previous Time:</strong> {{.PreviousTime}}</p>
      {{- end}}
      {{- if .PickupTime}}
      <p><strong>{{.PickupLabel}}:</strong> {{.PickupTime}}</p>
      {{- end}}
    </div>
    {{- if .Instructions}}
    <div class="instructions">
      <h3>Important Instructions</h3>
      <ol>
        {{- range .Instructions}}
        <li>{{.}}</li>
        {{- end}}
      </ol>
    </div>
    {{- end}}
    {{- if .NextSteps}}
    <p><strong>What to do next:</strong></p>
    <p>{{.NextSteps}}</p>
    {{- end}}
    <p>If you have any questions, please don't hesitate to contact us.</p>
  </div>
  <div class="footer">
    <p><strong>{{.Company}}</strong></p>
    <p>Phone: {{.Phone}}</p>
    <p>This is an automated {{.Kind}} email.</p>
  </div>
</div>
</body>
</html>
`))

type bodyData struct {
	Accent       template.CSS
	Title        string
	Company      string
	Phone        string
	Lead         string
	OrderNumber  string
	PickupLabel  string
	PickupTime   string
	PreviousTime string
	Instructions []string
	NextSteps    string
	Kind         string
}

func render(data bodyData) (string, error) {
	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func pickupInstructions(phone string) []string {
	return []string{
		"Please save this confirmation for your reference and prepare it when picking up.",
		"To cancel or modify your appointment, please contact us at " + phone + ".",
		"The appointment is reserved for 10 minutes. If you are delayed more than 10 minutes, the appointment will be void.",
		"We reserve the right to adjust the time. We will do our best to get your order ready, but we do not guarantee it will be ready at the exact scheduled time.",
	}
}
