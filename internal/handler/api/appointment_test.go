//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"pupperazi-api/internal/handler/api"
	resdto "pupperazi-api/internal/handler/dto/response"
	"pupperazi-api/internal/usecase/commands"
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

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/appointments", s.handler.Create)
	s.router.GET("/appointments", s.handler.List)
	s.router.GET("/appointments/:id", s.handler.Get)
	s.router.PATCH("/appointments/:id/status", s.handler.ChangeStatus)
	s.router.DELETE("/appointments/:id", s.handler.Delete)
	s.router.GET("/services", s.handler.ListServices)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

type testCaseAppointment struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/appointments"

	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&commands.CreateAppointmentResult{Appointment: view}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.PetName, response.PetName)
		s.Len(response.Services, len(view.Services))
	})

	s.Run("error: 400 Bad Request on binding violations", func() {
		cases := []testCaseAppointment{
			{name: "missing field: customerName", mutate: testutil.Field("customerName", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "missing field: serviceIds", mutate: testutil.Field("serviceIds", nil), expectCode: http.StatusBadRequest},
			{name: "empty serviceIds", mutate: testutil.Field("serviceIds", []string{}), expectCode: http.StatusBadRequest},
			{name: "missing field: startTime", mutate: testutil.Field("startTime", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 404 for unknown service id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrServiceNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestChangeStatus() {
	view := builder.NewAppointmentBuilder().WithStatus("confirmed").BuildView()
	url := "/appointments/" + view.ID.String() + "/status"

	s.Run("success: returns 200 OK with updated appointment", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), view.ID, "confirmed").
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "confirmed"}, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 409 Conflict for illegal transition", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), view.ID, "pending").
			Return(nil, commands.ErrInvalidStatusChange).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "pending"}, "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 404 for unknown appointment", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), view.ID, "cancelled").
			Return(nil, commands.ErrAppointmentNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "cancelled"}, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 for missing status field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown appointment", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(commands.ErrAppointmentNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/"+id.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestListServices() {
	s.Run("success: returns 200 OK with active services", func() {
		views := []*queries.ServiceView{
			{ID: uuid.New(), Name: "Full Groom", PriceCents: 8500, DurationMin: 90, Active: true},
			{ID: uuid.New(), Name: "Nail Trim", PriceCents: 1500, DurationMin: 15, Active: true},
		}
		s.mockQueries.EXPECT().ListServices(gomock.Any()).
			Return(views, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Full Groom")
	})
}
