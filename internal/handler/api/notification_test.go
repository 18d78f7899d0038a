//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/handler/api"
	resdto "skill-swap-core/internal/handler/dto/response"
	"skill-swap-core/internal/usecase/queries"
	"skill-swap-core/tests/common/httptest"
	queriesmock "skill-swap-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_ListMine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockNotificationQueries(ctrl)

	router := gin.New()
	router.GET("/notifications", mockAuth("STUDENT-1", auth.RoleLearner), api.NewNotificationHandler(q).ListMine)

	t.Run("success: lists the caller's notifications", func(t *testing.T) {
		q.EXPECT().
			ListMine(gomock.Any(), gomock.Cond(func(sc auth.SessionContext) bool { return sc.Identity.String() == "STUDENT-1" })).
			Return([]*queries.NotificationView{
				{Level: "success", Topic: "booking.committed", Message: "Booked", Fields: map[string]string{"session_id": "7"}, At: testNow},
			}, nil).Times(1)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/notifications", nil, "bearer-token")

		var body []resdto.NotificationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Len(t, body, 1)
		assert.Equal(t, "booking.committed", body[0].Topic)
		assert.Equal(t, "7", body[0].Fields["session_id"])
		assert.Equal(t, testNow.Unix(), body[0].At)
	})

	t.Run("error: 401 without a token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/notifications", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "")
	})
}
