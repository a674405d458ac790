package extract

import (
	"strings"
	"testing"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"email.txt", true},
		{"email.TXT", true},
		{"report.pdf", true},
		{"message.eml", true},
		{"script.exe", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Allowed(tt.filename); got != tt.expected {
				t.Errorf("Allowed(%q) = %v, want %v", tt.filename, got, tt.expected)
			}
		})
	}
}

func TestTextPlainFile(t *testing.T) {
	got, err := Text("email.txt", []byte("  Vamos discutir o projeto.  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "Vamos discutir o projeto." {
		t.Errorf("got %q", got)
	}
}

func TestTextUnsupported(t *testing.T) {
	if _, err := Text("email.docx", []byte("conteúdo")); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestTextBrokenPDF(t *testing.T) {
	if _, err := Text("broken.pdf", []byte("not a pdf at all")); err == nil {
		t.Error("expected error for invalid pdf data")
	}
}

func TestTextEML(t *testing.T) {
	raw := strings.Join([]string{
		"From: cliente@example.com",
		"To: triage@example.com",
		"Subject: Proposta de projeto",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"Vamos agendar uma reuniao para discutir o orcamento.",
		"",
	}, "\r\n")

	got, err := Text("message.eml", []byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Proposta de projeto") {
		t.Errorf("subject missing from extracted text: %q", got)
	}
	if !strings.Contains(got, "discutir o orcamento") {
		t.Errorf("body missing from extracted text: %q", got)
	}
}

func TestStripHTML(t *testing.T) {
	html := `<html><head><style>body { color: red }</style></head>` +
		`<body><p>Ganhe um <b>prêmio</b></p><script>alert(1)</script></body></html>`

	got := StripHTML(html)
	if !strings.Contains(got, "Ganhe um prêmio") {
		t.Errorf("visible text missing: %q", got)
	}
	if strings.Contains(got, "alert") || strings.Contains(got, "color") {
		t.Errorf("script/style content leaked: %q", got)
	}
}
