package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mailtriage/mailtriage/internal/extract"
	"github.com/mailtriage/mailtriage/internal/reply"
)

type analyzeResponse struct {
	Success    bool         `json:"success"`
	Category   string       `json:"category"`
	Confidence float64      `json:"confidence"`
	Response   string       `json:"response"`
	Analysis   analysisInfo `json:"analysis"`
}

type analysisInfo struct {
	ContentLength  int     `json:"content_length"`
	ProcessingTime float64 `json:"processing_time"`
	ModelUsed      string  `json:"model_used"`
}

type batchRequest struct {
	Emails []json.RawMessage `json:"emails"`
}

type batchItem struct {
	Index      int     `json:"index"`
	Success    bool    `json:"success"`
	Category   string  `json:"category,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Response   string  `json:"response,omitempty"`
	Error      string  `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Email Classifier API",
		"version": apiVersion,
		"status":  "active",
		"endpoints": map[string]string{
			"/analyze":       "POST - Analisar email (texto ou arquivo)",
			"/analyze/batch": "POST - Analisar emails em lote",
			"/health":        "GET - Status da API",
			"/models":        "GET - Informações dos modelos",
			"/templates":     "GET - Templates de resposta",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"models":    s.classifier.CheckStatus(),
		"version":   apiVersion,
	})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.classifier.ModelInfo())
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	inventory := reply.Templates(r.URL.Query().Get("category"))
	if msg, ok := inventory["error"].(string); ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	writeJSON(w, http.StatusOK, inventory)
}

// handleAnalyze accepts either a multipart upload (field "file"), a
// form field "text" or a JSON body {"text": ...}.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.config.Limits.MaxUploadBytes))

	content, status, err := s.readAnalyzeContent(r)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	if utf8.RuneCountInString(content) > s.config.Limits.MaxContentChars {
		writeError(w, http.StatusBadRequest, "Conteúdo muito longo. Máximo: 10.000 caracteres")
		return
	}

	result := s.classifier.Classify(content)
	response := s.selector.Generate(result.Category, content, result.Confidence)

	s.logger.Info().
		Str("category", string(result.Category)).
		Float64("confidence", result.Confidence).
		Int("content_length", utf8.RuneCountInString(content)).
		Msg("email classified")

	writeJSON(w, http.StatusOK, analyzeResponse{
		Success:    true,
		Category:   string(result.Category),
		Confidence: result.Confidence,
		Response:   response,
		Analysis: analysisInfo{
			ContentLength:  utf8.RuneCountInString(content),
			ProcessingTime: result.ProcessingTime,
			ModelUsed:      result.ModelUsed,
		},
	})
}

func (s *Server) readAnalyzeContent(r *http.Request) (string, int, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(int64(s.config.Limits.MaxUploadBytes)); err != nil {
			return "", http.StatusRequestEntityTooLarge, fmt.Errorf("Arquivo muito grande. Tamanho máximo: 10MB")
		}

		file, header, err := r.FormFile("file")
		if err == nil {
			defer file.Close()

			if header.Filename == "" {
				return "", http.StatusBadRequest, fmt.Errorf("Nenhum arquivo selecionado")
			}
			if !extract.Allowed(header.Filename) {
				return "", http.StatusBadRequest, fmt.Errorf("Tipo de arquivo não suportado. Use apenas .txt, .pdf ou .eml")
			}

			data, err := io.ReadAll(file)
			if err != nil {
				return "", http.StatusBadRequest, fmt.Errorf("Falha ao ler o arquivo enviado")
			}

			content, err := extract.Text(header.Filename, data)
			if err != nil {
				return "", http.StatusBadRequest, fmt.Errorf("Não foi possível extrair texto do arquivo")
			}
			return content, 0, nil
		}

		if text := strings.TrimSpace(r.FormValue("text")); text != "" {
			return text, 0, nil
		}
		return "", http.StatusBadRequest, fmt.Errorf("Forneça um arquivo ou texto para análise")
	}

	if strings.HasPrefix(contentType, "application/json") {
		var payload struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return "", http.StatusBadRequest, fmt.Errorf("Corpo JSON inválido")
		}
		text := strings.TrimSpace(payload.Text)
		if text == "" {
			return "", http.StatusBadRequest, fmt.Errorf("Texto do email não fornecido")
		}
		return text, 0, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", http.StatusBadRequest, fmt.Errorf("Requisição inválida")
	}
	if _, ok := r.PostForm["text"]; !ok {
		return "", http.StatusBadRequest, fmt.Errorf("Forneça um arquivo ou texto para análise")
	}
	text := strings.TrimSpace(r.PostFormValue("text"))
	if text == "" {
		return "", http.StatusBadRequest, fmt.Errorf("Texto do email não fornecido")
	}
	return text, 0, nil
}

// handleAnalyzeBatch classifies up to the configured batch limit in
// one request. Individual failures are reported per item and never
// abort the batch.
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Emails == nil {
		writeError(w, http.StatusBadRequest, "Lista de emails não fornecida")
		return
	}

	if len(req.Emails) > s.config.Limits.MaxBatchItems {
		writeError(w, http.StatusBadRequest, "Lista inválida ou muito longa. Máximo: 50 emails")
		return
	}

	results := make([]batchItem, 0, len(req.Emails))
	for i, raw := range req.Emails {
		content, ok := decodeBatchEntry(raw)
		if !ok {
			results = append(results, batchItem{Index: i, Success: false, Error: "Formato inválido"})
			continue
		}

		result := s.classifier.Classify(content)
		response := s.selector.Generate(result.Category, content, result.Confidence)
		results = append(results, batchItem{
			Index:      i,
			Success:    true,
			Category:   string(result.Category),
			Confidence: result.Confidence,
			Response:   response,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"total_processed": len(req.Emails),
		"results":         results,
	})
}

// decodeBatchEntry accepts either a bare string or an object with a
// "content" field.
func decodeBatchEntry(raw json.RawMessage) (string, bool) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, true
	}

	var entry struct {
		Content *string `json:"content"`
	}
	if err := json.Unmarshal(raw, &entry); err == nil && entry.Content != nil {
		return *entry.Content, true
	}
	return "", false
}
