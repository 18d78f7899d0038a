//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/user"
	"skill-swap-core/internal/handler/api"
	resdto "skill-swap-core/internal/handler/dto/response"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/queries"
	"skill-swap-core/tests/common/builder"
	"skill-swap-core/tests/common/httptest"
	"skill-swap-core/tests/common/testutil"
	commandsmock "skill-swap-core/tests/mock/commands"
	queriesmock "skill-swap-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	handler := api.NewUserHandler(s.mockCommands, s.mockQueries, identity.OpaqueFormat{})

	s.router.POST("/users", mockAuth("TEACHER-1", auth.RoleTeacher), handler.Register)
	s.router.GET("/users/:identity/reputation", handler.GetReputation)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestRegister() {
	reqBody := builder.NewUserBuilder().BuildRequestDTO()

	s.Run("success: returns 201 Created", func() {
		u, err := builder.NewUserBuilder().BuildDomain(testNow)
		s.Require().NoError(err)
		s.mockCommands.EXPECT().RegisterUser(gomock.Any(), gomock.Any(), "Ada Teacher").Return(u, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", reqBody, "bearer-token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("TEACHER-1", body.Identity)
		s.Equal("Ada Teacher", body.Name)
		s.Zero(body.Reputation)
	})

	s.Run("error: 400 Bad Request on invalid name", func() {
		for name, mutate := range map[string]func(map[string]any){
			"missing":  testutil.Field("name", nil),
			"empty":    testutil.Field("name", ""),
			"too long": testutil.Field("name", strings.Repeat("n", user.MaxNameLength+1)),
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", testutil.DtoMap(s.T(), reqBody, mutate), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 Conflict when already registered", func() {
		s.mockCommands.EXPECT().RegisterUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("user already registered"), errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})
}

func (s *UserHandlerTestSuite) TestGetReputation() {
	s.Run("success: returns reputation totals", func() {
		s.mockQueries.EXPECT().GetReputation(gomock.Any(), identity.MustParse("TEACHER-1")).
			Return(&queries.ReputationView{
				Identity:       "TEACHER-1",
				Name:           "Ada Teacher",
				Reputation:     3,
				SkillsListed:   2,
				SessionsTaught: 3,
				RegisteredAt:   testNow,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/TEACHER-1/reputation", nil, "")

		var body resdto.ReputationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Reputation)
		s.Equal(2, body.SkillsListed)
	})

	s.Run("error: 400 Bad Request on a malformed identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/bad%20id/reputation", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid identity")
	})

	s.Run("error: 404 Not Found for an unregistered identity", func() {
		s.mockQueries.EXPECT().GetReputation(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("user not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/NOBODY/reputation", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}
