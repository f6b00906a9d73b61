//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"pupperazi-api/internal/domain/lead"
	"pupperazi-api/internal/handler/api"
	resdto "pupperazi-api/internal/handler/dto/response"
	"pupperazi-api/internal/pkg/errs"
	"pupperazi-api/internal/usecase/queries"
	"pupperazi-api/tests/common/builder"
	"pupperazi-api/tests/common/httptest"
	"pupperazi-api/tests/common/testutil"
	commandsmock "pupperazi-api/tests/mock/commands"
	queriesmock "pupperazi-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeadHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLeadCommands
	mockQueries  *queriesmock.MockLeadQueries
	handler      *api.LeadHandler
}

func (s *LeadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLeadCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLeadQueries(s.mockCtrl)
	s.handler = api.NewLeadHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/leads", s.handler.Submit)
	s.router.GET("/leads", s.handler.List)
	s.router.GET("/leads/:id", s.handler.Get)
}

func (s *LeadHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeadHandlerSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}

func (s *LeadHandlerTestSuite) TestSubmit() {
	url := "/leads"

	reqBody := builder.NewLeadBuilder().BuildDTO()
	result := builder.NewLeadBuilder().BuildSubmitResult()

	s.Run("success: returns 200 OK with per-channel notification flags", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SubmitLeadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.True(response.Notifications.BusinessSms)
		s.True(response.Notifications.CustomerEmail)
		s.NotEmpty(response.Message)
	})

	s.Run("success: degraded channels still return 200", func() {
		degraded := builder.NewLeadBuilder().BuildSubmitResult()
		degraded.Notifications.CustomerSMS.Sent = false
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).
			Return(degraded, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SubmitLeadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.False(response.Notifications.CustomerSms)
	})

	s.Run("error: 400 with field details on validation failure", func() {
		verr := &lead.ValidationError{Fields: []lead.FieldError{
			{Field: "message", Message: "Message must be at least 10 characters"},
			{Field: "email", Message: "Please enter a valid email address"},
		}}
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, verr).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("message", "short"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Validation failed")
		s.Contains(rec.Body.String(), "message")
		s.Contains(rec.Body.String(), "email")
	})

	s.Run("error: 400 on malformed JSON body", func() {
		req := strings.NewReader(`{"nameAndPhone": `)
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).
			Return(nil, errs.New("db down")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *LeadHandlerTestSuite) TestGet() {
	view := builder.NewLeadBuilder().BuildView()

	s.Run("success: returns 200 OK with lead", func() {
		s.mockQueries.EXPECT().GetLead(gomock.Any(), view.ID).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads/"+view.ID.String(), nil, "")

		var response resdto.LeadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Email, response.Email)
	})

	s.Run("error: 404 for unknown lead", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetLead(gomock.Any(), id).
			Return(nil, queries.ErrLeadNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads/"+id.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *LeadHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with leads, default limit", func() {
		views := []*queries.LeadView{builder.NewLeadBuilder().BuildView()}
		s.mockQueries.EXPECT().ListLeads(gomock.Any(), int32(0)).
			Return(views, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "leads")
	})

	s.Run("success: limit query is forwarded", func() {
		s.mockQueries.EXPECT().ListLeads(gomock.Any(), int32(5)).
			Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads?limit=5", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}
