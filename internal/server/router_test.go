package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supportbot/copilot-go/internal/analyzer"
	"github.com/supportbot/copilot-go/internal/config"
	"github.com/supportbot/copilot-go/internal/metrics"
	"github.com/supportbot/copilot-go/internal/model"
	"github.com/supportbot/copilot-go/internal/service"
	"github.com/supportbot/copilot-go/internal/store"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router   *gin.Engine
	sessions *service.SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.Default()
	logger := zap.NewNop()
	m := metrics.New()

	tickets := service.NewTicketService(store.NewMemoryTicketStore(), logger)
	require.NoError(t, tickets.SeedDefaults(context.Background()))
	sessions := service.NewSessionService(cfg.Session, m, logger)

	return &testEnv{
		router: NewRouter(Deps{
			Config:          cfg,
			AnalysisService: service.NewAnalysisService(analyzer.New(), m, logger),
			TicketService:   tickets,
			SessionService:  sessions,
			Metrics:         m,
			Logger:          logger,
		}),
		sessions: sessions,
	}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// wire 形式的分析响应
type chatResponse struct {
	Query          string `json:"query"`
	Classification struct {
		Topic     string `json:"topic"`
		Sentiment string `json:"sentiment"`
		Priority  string `json:"priority"`
	} `json:"classification"`
	Response        string   `json:"response"`
	Confidence      int      `json:"confidence"`
	ProcessingTime  int      `json:"processing_time"`
	AnalysisDetails string   `json:"analysis_details"`
	AgentsUsed      []string `json:"agents_used"`
	Attachments     int      `json:"attachments"`
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/api/", "/api/health"} {
		rec := env.do(httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "copilot-api", body["service"])
		assert.Equal(t, 0.0, body["online_sessions"])
	}
}

func TestChat_JSON(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(postJSON("/api/chat", `{"query":"I want to request a new feature for data export"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Feature Request", resp.Classification.Topic)
	assert.Equal(t, "Positive", resp.Classification.Sentiment)
	assert.Equal(t, "Low", resp.Classification.Priority)
	assert.Equal(t, analyzer.SynthesizeResponse(model.TopicFeatureRequest), resp.Response)
	assert.GreaterOrEqual(t, resp.Confidence, 85)
	assert.LessOrEqual(t, resp.Confidence, 99)
	assert.GreaterOrEqual(t, resp.ProcessingTime, 200)
	assert.LessOrEqual(t, resp.ProcessingTime, 699)
	assert.Contains(t, resp.AnalysisDetails, "feature request with positive sentiment")
	assert.Equal(t, []string{"TopicClassifier", "SentimentClassifier", "PriorityAssigner", "ResponseSynthesizer"}, resp.AgentsUsed)
}

func TestChat_EmptyQueryIsValid(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(postJSON("/api/chat", `{"query":""}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "General Inquiry", resp.Classification.Topic)
	assert.Equal(t, "Neutral", resp.Classification.Sentiment)
	assert.Equal(t, "Medium", resp.Classification.Priority)
}

func TestChat_BadRequests(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name string
		body string
	}{
		{"missing field", `{"text":"hello"}`},
		{"malformed json", `{"query":`},
		{"empty body", ``},
		{"wrong type", `{"query": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(postJSON("/api/chat", tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestChat_Multipart(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("query", "my dashboard is slow"))
	for _, name := range []string{"a.png", "b.csv"} {
		fw, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("opaque bytes: login password data"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/chat", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := env.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// 附件内容不参与分类
	assert.Equal(t, "Performance Issue", resp.Classification.Topic)
	assert.Equal(t, 2, resp.Attachments)
}

func TestChat_MultipartMissingQuery(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("files", "a.txt")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("x"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/chat", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, env.do(req).Code)
}

func TestClassify(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(postJSON("/api/classify", `{"text":"thank you, I have an issue with login"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.ClassifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.Classification{
		Topic:     model.TopicLoginIssue,
		Sentiment: model.SentimentPositive,
		Priority:  model.PriorityHigh,
	}, resp.Classification)
	assert.GreaterOrEqual(t, resp.Confidence, analyzer.MinConfidence)
	assert.LessOrEqual(t, resp.Confidence, analyzer.MaxConfidence)

	assert.Equal(t, http.StatusBadRequest, env.do(postJSON("/api/classify", `{"query":"x"}`)).Code)
}

func TestTickets(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/tickets", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tickets []model.Ticket `json:"tickets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, store.DefaultTickets(), body.Tickets)
	assert.Contains(t, rec.Body.String(), `"ticketNumber":"TKT-2024-001"`)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(postJSON("/api/chat", `{"query":"billing"}`))

	rec := env.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `copilot_analyses_total{priority="Medium",sentiment="Neutral",topic="Billing Question"} 1`)
	assert.Contains(t, rec.Body.String(), `copilot_http_requests_total{method="POST",path="/api/chat",status="200"} 1`)
}

func TestWebSocketChat(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var greeting model.ChatMessage
	require.NoError(t, conn.ReadJSON(&greeting))
	assert.Equal(t, model.MessageTypeGreeting, greeting.Type)
	assert.Equal(t, model.GreetingText, greeting.Content)
	assert.NotEmpty(t, greeting.SessionID)
	assert.Equal(t, 1, env.sessions.OnlineCount())

	require.NoError(t, conn.WriteJSON(model.ChatMessage{MessageID: "m1", Type: model.MessageTypeChat, Content: "reset my login please"}))
	var reply model.ChatMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, model.MessageTypeAnalysis, reply.Type)
	assert.Equal(t, "m1", reply.ReplyTo)
	require.NotNil(t, reply.Analysis)
	assert.Equal(t, model.TopicLoginIssue, reply.Analysis.Classification.Topic)
	assert.Equal(t, model.PriorityHigh, reply.Analysis.Classification.Priority)
	assert.Equal(t, reply.Analysis.Response, reply.Content)

	// 心跳没有回复，下一条消息直接是 ERROR
	require.NoError(t, conn.WriteJSON(model.ChatMessage{Type: model.MessageTypeHeartbeat}))
	require.NoError(t, conn.WriteJSON(model.ChatMessage{MessageID: "m2", Type: "BOGUS"}))
	var errMsg model.ChatMessage
	require.NoError(t, conn.ReadJSON(&errMsg))
	assert.Equal(t, model.MessageTypeError, errMsg.Type)
	assert.Equal(t, "m2", errMsg.ReplyTo)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	assert.Eventually(t, func() bool { return env.sessions.OnlineCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
