package routing

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/pashagolub/pgxmock/v3"

	"calendar-server/internal/schemas"
)

var eventColumns = []string{"id", "user_id", "title", "description", "start_time", "end_time", "color", "source",
	"reminder_enabled", "reminder_time", "reminder_type", "tags", "created_at", "updated_at"}

var eventStart = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func addEventRow(rows *pgxmock.Rows, id int64, title string, start, end time.Time) *pgxmock.Rows {
	reminderTime := int32(schemas.DefaultReminderTime)
	reminderType := schemas.DefaultReminderType
	return rows.AddRow(id, int64(1), title, nil, start, end, schemas.DefaultEventColor, schemas.DefaultEventSource,
		false, &reminderTime, &reminderType, nil, createdAt, createdAt)
}

func expectActiveUser(poolMock pgxmock.PgxPoolIface) {
	poolMock.ExpectQuery("SELECT .* FROM users WHERE id").WithArgs(int64(1)).
		WillReturnRows(userRow(1, "a@x.com", "alice", "$2a$04$hash", true))
}

func TestEventsAuthorization(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		mockDB func(poolMock pgxmock.PgxPoolIface)
		status int
		code   string
	}{
		{
			name:   "MissingHeader",
			mockDB: func(poolMock pgxmock.PgxPoolIface) {},
			status: http.StatusUnauthorized,
			code:   "ERR-007",
		},
		{
			name:   "WrongScheme",
			header: "Basic YWxpY2U6cHcx",
			mockDB: func(poolMock pgxmock.PgxPoolIface) {},
			status: http.StatusUnauthorized,
			code:   "ERR-007",
		},
		{
			name:   "InvalidToken",
			header: "Bearer NonsenseToken",
			mockDB: func(poolMock pgxmock.PgxPoolIface) {},
			status: http.StatusUnauthorized,
			code:   "ERR-006",
		},
		{
			name: "UserNotFound",
			mockDB: func(poolMock pgxmock.PgxPoolIface) {
				poolMock.ExpectQuery("SELECT .* FROM users WHERE id").WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows(userColumns))
			},
			status: http.StatusNotFound,
			code:   "ERR-004",
		},
		{
			name: "InactiveUser",
			mockDB: func(poolMock pgxmock.PgxPoolIface) {
				poolMock.ExpectQuery("SELECT .* FROM users WHERE id").WithArgs(int64(1)).
					WillReturnRows(userRow(1, "a@x.com", "alice", "$2a$04$hash", false))
			},
			status: http.StatusForbidden,
			code:   "ERR-005",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			databaseMgrMock, poolMock, jwtMgr, _ := setupMocks(t)
			server := httptest.NewServer(InitEventsRouter(databaseMgrMock, jwtMgr))
			defer server.Close()

			header := tc.header
			if header == "" && tc.name != "MissingHeader" {
				header = "Bearer " + accessTokenFor(t, jwtMgr, "1")
			}
			tc.mockDB(poolMock)

			request := httpexpect.Default(t, server.URL).GET("/events")
			if header != "" {
				request = request.WithHeader("Authorization", header)
			}
			request.Expect().Status(tc.status).
				JSON().Object().Value("error").Object().HasValue("code", tc.code)

			if err := poolMock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func TestEventsCRUD(t *testing.T) {
	databaseMgrMock, poolMock, jwtMgr, _ := setupMocks(t)
	server := httptest.NewServer(InitEventsRouter(databaseMgrMock, jwtMgr))
	defer server.Close()

	auth := "Bearer " + accessTokenFor(t, jwtMgr, "1")
	expect := httpexpect.Default(t, server.URL)

	t.Run("List", func(t *testing.T) {
		expectActiveUser(poolMock)
		rows := pgxmock.NewRows(eventColumns)
		addEventRow(rows, 1, "Standup", eventStart, eventStart.Add(time.Hour))
		addEventRow(rows, 2, "Review", eventStart.Add(3*time.Hour), eventStart.Add(4*time.Hour))
		poolMock.ExpectQuery("SELECT .* FROM events WHERE user_id = \\$1 ORDER BY start_time").
			WithArgs(int64(1)).WillReturnRows(rows)

		list := expect.GET("/events").WithHeader("Authorization", auth).
			Expect().Status(http.StatusOK).JSON().Array()
		list.Length().IsEqual(2)
		list.Value(0).Object().HasValue("title", "Standup")
		list.Value(1).Object().HasValue("reminder_time", 15)
	})

	t.Run("Create", func(t *testing.T) {
		expectActiveUser(poolMock)
		poolMock.ExpectQuery("INSERT INTO events").
			WithArgs(int64(1), "Standup", pgxmock.AnyArg(), eventStart, eventStart.Add(time.Hour),
				schemas.DefaultEventColor, schemas.DefaultEventSource, false, pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(addEventRow(pgxmock.NewRows(eventColumns), 10, "Standup", eventStart, eventStart.Add(time.Hour)))

		body := expect.POST("/events").WithHeader("Authorization", auth).
			WithJSON(map[string]interface{}{
				"title":      "Standup",
				"start_time": eventStart.Format(time.RFC3339),
				"end_time":   eventStart.Add(time.Hour).Format(time.RFC3339),
			}).
			Expect().Status(http.StatusCreated).JSON().Object()
		body.HasValue("id", 10)
		body.HasValue("color", "#3b82f6")
		body.HasValue("source", "local")
	})

	t.Run("CreateKeepsTextAsSent", func(t *testing.T) {
		title := "Tom & Jerry <3"
		description := `Q&A <prep> with "O'Brien"`
		expectActiveUser(poolMock)
		rows := pgxmock.NewRows(eventColumns).AddRow(int64(11), int64(1), title, &description, eventStart,
			eventStart.Add(time.Hour), schemas.DefaultEventColor, schemas.DefaultEventSource, false, nil, nil, nil,
			createdAt, createdAt)
		poolMock.ExpectQuery("INSERT INTO events").
			WithArgs(int64(1), title, &description, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg()).
			WillReturnRows(rows)

		body := expect.POST("/events").WithHeader("Authorization", auth).
			WithJSON(map[string]interface{}{
				"title":       title,
				"description": description,
				"start_time":  eventStart.Format(time.RFC3339),
				"end_time":    eventStart.Add(time.Hour).Format(time.RFC3339),
			}).
			Expect().Status(http.StatusCreated).JSON().Object()
		body.HasValue("title", title)
		body.HasValue("description", description)
	})

	t.Run("CreateRejectsTiming", func(t *testing.T) {
		expectActiveUser(poolMock)

		expect.POST("/events").WithHeader("Authorization", auth).
			WithJSON(map[string]interface{}{
				"title":      "Broken",
				"start_time": eventStart.Format(time.RFC3339),
				"end_time":   eventStart.Format(time.RFC3339),
			}).
			Expect().Status(http.StatusBadRequest).
			JSON().Object().Value("error").Object().HasValue("code", "ERR-009")
	})

	t.Run("CreateRejectsUnknownSource", func(t *testing.T) {
		expectActiveUser(poolMock)

		expect.POST("/events").WithHeader("Authorization", auth).
			WithJSON(map[string]interface{}{
				"title":      "Sync",
				"start_time": eventStart.Format(time.RFC3339),
				"end_time":   eventStart.Add(time.Hour).Format(time.RFC3339),
				"source":     "outlook",
			}).
			Expect().Status(http.StatusBadRequest).
			JSON().Object().Value("error").Object().HasValue("code", "ERR-001")
	})

	t.Run("GetNonNumericId", func(t *testing.T) {
		expectActiveUser(poolMock)

		expect.GET("/events/abc").WithHeader("Authorization", auth).
			Expect().Status(http.StatusBadRequest).
			JSON().Object().Value("error").Object().HasValue("code", "ERR-001")
	})

	t.Run("GetOtherUsersEvent", func(t *testing.T) {
		expectActiveUser(poolMock)
		poolMock.ExpectQuery("SELECT .* FROM events WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(int64(42), int64(1)).WillReturnRows(pgxmock.NewRows(eventColumns))

		expect.GET("/events/42").WithHeader("Authorization", auth).
			Expect().Status(http.StatusNotFound).
			JSON().Object().Value("error").Object().HasValue("code", "ERR-008")
	})

	t.Run("UpdateRevalidatesMergedTiming", func(t *testing.T) {
		expectActiveUser(poolMock)
		poolMock.ExpectQuery("SELECT .* FROM events WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(int64(1), int64(1)).
			WillReturnRows(addEventRow(pgxmock.NewRows(eventColumns), 1, "Standup", eventStart, eventStart.Add(time.Hour)))

		expect.PUT("/events/1").WithHeader("Authorization", auth).
			WithJSON(map[string]interface{}{"start_time": eventStart.Add(2 * time.Hour).Format(time.RFC3339)}).
			Expect().Status(http.StatusBadRequest).
			JSON().Object().Value("error").Object().HasValue("code", "ERR-009")
	})

	t.Run("Delete", func(t *testing.T) {
		expectActiveUser(poolMock)
		poolMock.ExpectExec("DELETE FROM events").WithArgs(int64(1), int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		expect.DELETE("/events/1").WithHeader("Authorization", auth).
			Expect().Status(http.StatusNoContent).NoContent()
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		expectActiveUser(poolMock)
		poolMock.ExpectExec("DELETE FROM events").WithArgs(int64(2), int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		expect.DELETE("/events/2").WithHeader("Authorization", auth).
			Expect().Status(http.StatusNotFound)
	})

	if err := poolMock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
