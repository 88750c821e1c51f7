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

	"github.com/ventaplus/ventaplus-api/internal/application/ports"
)

// Verificar en tiempo de compilación que OllamaService implementa DescriptionGenerator.
var _ ports.DescriptionGenerator = (*OllamaService)(nil)

// OllamaService adaptador que implementa DescriptionGenerator contra la API
// /api/generate de un Ollama local. Usa net/http de la librería estándar;
// no requiere SDK.
type OllamaService struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOllamaService construye el adaptador.
// baseURL suele ser "http://localhost:11434" y model "deepseek-r1:7b".
func NewOllamaService(baseURL, model string) *OllamaService {
	return &OllamaService{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			// Timeout de red de 90 s; el use case impone además su propio
			// context.WithTimeout. Los modelos locales tardan en cargar.
			Timeout: 90 * time.Second,
		},
	}
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// thinkBlockRe elimina los bloques <think>...</think> que emiten los modelos
// de razonamiento antes de la respuesta final.
var thinkBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// GenerateDescription pide al modelo una descripción corta de marketing para
// el producto y devuelve el texto ya limpio.
func (s *OllamaService) GenerateDescription(ctx context.Context, nombre, categoria string) (string, error) {
	prompt := fmt.Sprintf(
		"Genera una descripción de venta atractiva y corta (máximo 30 palabras), en español, "+
			"para el siguiente producto: \"%s\" de la categoría \"%s\". "+
			"Responde únicamente con la descripción, sin comillas ni texto adicional.",
		nombre, categoria,
	)

	body, err := json.Marshal(ollamaRequest{Model: s.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ollamaResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != "" {
			return "", fmt.Errorf("AI: Ollama error: %s", errResp.Error)
		}
		return "", fmt.Errorf("AI: Ollama HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var ollresp ollamaResponse
	if err := json.Unmarshal(rawBody, &ollresp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Ollama: %w", err)
	}

	texto := limpiarRespuesta(ollresp.Response)
	if texto == "" {
		return "", fmt.Errorf("AI: el modelo devolvió respuesta vacía")
	}
	return texto, nil
}

// limpiarRespuesta quita el razonamiento <think>, comillas envolventes y
// espacio sobrante de la salida del modelo.
func limpiarRespuesta(raw string) string {
	texto := thinkBlockRe.ReplaceAllString(raw, "")
	texto = strings.TrimSpace(texto)
	texto = strings.Trim(texto, `"`)
	return strings.TrimSpace(texto)
}
