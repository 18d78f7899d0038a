//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/review"
	"skill-swap-core/internal/handler/api"
	resdto "skill-swap-core/internal/handler/dto/response"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/queries"
	"skill-swap-core/tests/common/builder"
	"skill-swap-core/tests/common/httptest"
	"skill-swap-core/tests/common/testutil"
	commandsmock "skill-swap-core/tests/mock/commands"
	queriesmock "skill-swap-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockSkillQueries
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSkillQueries(s.mockCtrl)
	handler := api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/skills/:id/reviews", mockAuth("STUDENT-1", auth.RoleLearner), handler.Submit)
	s.router.GET("/skills/:id/reviews", handler.List)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *ReviewHandlerTestSuite) TestSubmit() {
	url := "/skills/1/reviews"

	reqBody := builder.NewReviewBuilder().BuildRequestDTO()
	expectedResult := &commands.SubmitReviewResult{
		FeedbackID:    1,
		AverageRating: decimal.RequireFromString("4.25"),
		FeedbackCount: 4,
	}

	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", review.MinRating), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", review.MaxRating), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (max)", mutate: testutil.Field("comment", strings.Repeat("a", review.MaxCommentLength)), expectCode: http.StatusCreated},
		{name: "comment length invalid (max+1)", mutate: testutil.Field("comment", strings.Repeat("a", review.MaxCommentLength+1)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReview{
		{name: "missing field: rating", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment", mutate: testutil.Field("comment", nil), expectCode: http.StatusBadRequest},
	}

	empty := []testCaseReview{
		{name: "empty comment", mutate: testutil.Field("comment", ""), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseReview{bound, missing, empty}

	s.Run("success: returns 201 Created with the new average", func() {
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), gomock.Any(), builder.NewReviewBuilder().BuildInput()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.SubmitReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(uint64(1), body.FeedbackID)
		s.Equal("4.3", body.AverageRating)
		s.Equal(4, body.FeedbackCount)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(expectedResult, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 Not Found for an unknown skill", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(commands.ErrSkillNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReviewHandlerTestSuite) TestList() {
	items := []*queries.FeedbackView{
		{ID: 3, Student: "STUDENT-1", Rating: 5, Comment: "Great", CreatedAt: testNow},
		{ID: 2, Student: "STUDENT-2", Rating: 4, Comment: "Good", CreatedAt: testNow},
	}

	s.Run("success: first page returns next cursor", func() {
		s.mockQueries.EXPECT().ListFeedback(gomock.Any(), uint64(1), (*queries.Cursor)(nil), 2).
			Return(items, &queries.Cursor{After: "next-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/skills/1/reviews?limit=2", nil, "")

		var body resdto.FeedbackPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 2)
		s.Equal(uint64(3), body.Items[0].ID)
		s.Equal("next-token", body.NextCursor)
	})

	s.Run("success: cursor is passed through", func() {
		s.mockQueries.EXPECT().ListFeedback(gomock.Any(), uint64(1), &queries.Cursor{After: "next-token"}, 0).
			Return(items[1:], nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/skills/1/reviews?cursor=next-token", nil, "")

		var body resdto.FeedbackPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Empty(body.NextCursor)
	})

	s.Run("error: 400 Bad Request on a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/skills/1/reviews?limit=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 Bad Request on a corrupt cursor", func() {
		s.mockQueries.EXPECT().ListFeedback(gomock.Any(), uint64(1), gomock.Any(), 0).
			Return(nil, nil, errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/skills/1/reviews?cursor=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
