package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servidorOllama(t *testing.T, respuesta string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream, "siempre se pide respuesta no-streaming")
		assert.Contains(t, req.Prompt, "Arroz Extra 1kg", "el prompt debe llevar el nombre del producto")

		w.WriteHeader(status)
		json.NewEncoder(w).Encode(ollamaResponse{Response: respuesta})
	}))
}

func TestGenerateDescription_RespuestaLimpia(t *testing.T) {
	srv := servidorOllama(t, `  "Arroz de grano largo, rinde más en tu mesa."  `, http.StatusOK)
	defer srv.Close()

	svc := NewOllamaService(srv.URL, "deepseek-r1:7b")
	texto, err := svc.GenerateDescription(context.Background(), "Arroz Extra 1kg", "Abarrotes")
	require.NoError(t, err)
	assert.Equal(t, "Arroz de grano largo, rinde más en tu mesa.", texto,
		"comillas y espacios envolventes deben eliminarse")
}

func TestGenerateDescription_QuitaBloqueThink(t *testing.T) {
	raw := "<think>\nEl usuario quiere una descripción corta...\n</think>\nArroz premium para tu negocio."
	srv := servidorOllama(t, raw, http.StatusOK)
	defer srv.Close()

	svc := NewOllamaService(srv.URL, "deepseek-r1:7b")
	texto, err := svc.GenerateDescription(context.Background(), "Arroz Extra 1kg", "Abarrotes")
	require.NoError(t, err)
	assert.Equal(t, "Arroz premium para tu negocio.", texto)
}

func TestGenerateDescription_RespuestaVacia(t *testing.T) {
	srv := servidorOllama(t, "<think>solo razonamiento</think>", http.StatusOK)
	defer srv.Close()

	svc := NewOllamaService(srv.URL, "deepseek-r1:7b")
	_, err := svc.GenerateDescription(context.Background(), "Arroz Extra 1kg", "Abarrotes")
	assert.Error(t, err, "una salida que queda vacía tras limpiar es un error")
}

func TestGenerateDescription_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ollamaResponse{Error: "model 'deepseek-r1:7b' not found"})
	}))
	defer srv.Close()

	svc := NewOllamaService(srv.URL, "deepseek-r1:7b")
	_, err := svc.GenerateDescription(context.Background(), "Arroz Extra 1kg", "Abarrotes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found", "el error de Ollama debe propagarse en el mensaje")
}

func TestLimpiarRespuesta(t *testing.T) {
	casos := map[string]string{
		`"texto entre comillas"`:             "texto entre comillas",
		"  con espacios  ":                   "con espacios",
		"<think>a</think>final<think>b</think>": "final",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, limpiarRespuesta(entrada))
	}
}
