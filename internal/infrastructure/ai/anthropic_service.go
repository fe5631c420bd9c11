package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa ClinicalAIService.
var _ ports.ClinicalAIService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	diagnosisSystemPrompt = `Eres un médico internista asistiendo a otro médico. Tu salida es un BORRADOR
que el médico tratante revisa; jamás un diagnóstico definitivo.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown, sin bloques de código` + " ```json" + `) con esta estructura exacta:
{
  "draft_diagnosis": "<diagnóstico más probable, en español>",
  "differentials": ["<diagnóstico diferencial>", "..."],
  "suggested_tests": ["<prueba de laboratorio o imagen sugerida>", "..."],
  "confidence_score": <número decimal entre 0.0 y 1.0>,
  "reasoning": "<razonamiento clínico conciso en español, máximo 300 caracteres>"
}

Reglas:
- differentials: de 1 a 4 alternativas razonables, ordenadas por probabilidad.
- confidence_score: 0.9–1.0 = cuadro claro, 0.7–0.89 = probable, <0.7 = insuficiente información.
- Si la información es insuficiente, dilo en reasoning y baja el confidence_score.
- No incluyas texto fuera del JSON. Solo el objeto JSON.`

	transcriptSystemPrompt = `Eres un asistente de documentación clínica. Convierte la transcripción libre
de un dictado médico en una nota clínica con formato SOAP.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown, sin bloques de código` + " ```json" + `) con esta estructura exacta:
{
  "chief_complaint": "<motivo de consulta>",
  "subjective": "<lo que relata el paciente>",
  "objective": "<hallazgos del examen físico y signos vitales mencionados>",
  "assessment": "<impresión diagnóstica del médico tal como la dictó>",
  "plan": "<plan de manejo dictado>"
}

Reglas:
- Usa solo información presente en la transcripción; no inventes hallazgos.
- Si una sección no aparece en el dictado, déjala como string vacío.
- No incluyas texto fuera del JSON. Solo el objeto JSON.`
)

// AnthropicService adaptador que implementa ClinicalAIService usando la API REST de Anthropic (Claude).
// Usa net/http de la librería estándar de Go; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque Claude lo envuelva en markdown.
// Captura desde el primer '{' hasta el último '}' coincidente.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementación del puerto ─────────────────────────────────────────────────

// SuggestDiagnosisDraft envía síntomas, notas e historia del paciente a Claude
// y devuelve el borrador de diagnóstico con diferenciales y pruebas sugeridas.
func (s *AnthropicService) SuggestDiagnosisDraft(
	ctx context.Context,
	in dto.DiagnosisDraftRequest,
) (*dto.DiagnosisDraftDTO, error) {
	userContent := fmt.Sprintf("Síntomas: %s\nNotas clínicas: %s\nHistoria del paciente: %s",
		in.Symptoms, in.ClinicalNotes, in.PatientHistory)

	var draft dto.DiagnosisDraftDTO
	if err := s.complete(ctx, diagnosisSystemPrompt, userContent, &draft); err != nil {
		return nil, err
	}
	if draft.ConfidenceScore < 0 {
		draft.ConfidenceScore = 0
	} else if draft.ConfidenceScore > 1 {
		draft.ConfidenceScore = 1
	}
	return &draft, nil
}

// StructureTranscript convierte el dictado libre en una nota SOAP.
func (s *AnthropicService) StructureTranscript(
	ctx context.Context,
	transcript string,
) (*dto.StructuredNoteDTO, error) {
	var note dto.StructuredNoteDTO
	if err := s.complete(ctx, transcriptSystemPrompt, transcript, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// complete ejecuta una llamada al Messages API y deserializa el JSON de la
// respuesta del modelo en out.
func (s *AnthropicService) complete(ctx context.Context, system, userContent string, out any) error {
	if s.apiKey == "" {
		return fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    system,
		Messages: []anthropicMessage{
			{Role: "user", Content: userContent},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("AI: leer respuesta: %w", err)
	}

	// Manejar errores HTTP de la API de Anthropic
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}

	rawText := anthResp.Content[0].Text

	// Parseo seguro: extraer solo el bloque JSON aunque Claude añada texto adicional.
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", rawText)
	}

	if err := json.Unmarshal([]byte(cleanJSON), out); err != nil {
		return fmt.Errorf("AI: parsear JSON del modelo: %w (JSON extraído: %s)", err, cleanJSON)
	}
	return nil
}

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Estrategia en dos pasos:
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	// Eliminar bloques markdown ```json ... ``` o ``` ... ```
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		// Quitar la línea de apertura (```json o ```)
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		// Quitar el cierre ```
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	// Si el texto resultante ya empieza con '{', usarlo directamente
	if strings.HasPrefix(text, "{") {
		return text
	}

	// Fallback: regex para extraer el primer {...}
	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
