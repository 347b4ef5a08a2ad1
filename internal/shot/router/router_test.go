package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/courtside/nba-stats/internal/render"
	"github.com/courtside/nba-stats/internal/shot/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.PlayerShot{}))
	return db
}

func setupRouter(t *testing.T, db *gorm.DB, playerName string) *gin.Engine {
	t.Helper()
	renderer, err := render.New(fstest.MapFS{
		"player_page.html": {Data: []byte(`{{.player_name}}{{range .player_shots}};{{.ShotID}}{{end}}`)},
	})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, db, renderer, playerName, time.Second, zap.NewNop().Sugar())
	return r
}

func TestRegisterRoutes(t *testing.T) {
	day := time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("filters by configured player", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.Create(&[]model.PlayerShot{
			{ShotID: 1, GameID: "g1", GameDate: day, PlayerName: "James Harden", Period: 1},
			{ShotID: 2, GameID: "g1", GameDate: day, PlayerName: "Clint Capela", Period: 1},
			{ShotID: 3, GameID: "g1", GameDate: day, PlayerName: "James Harden", Period: 2},
		}).Error)

		w := httptest.NewRecorder()
		setupRouter(t, db, "James Harden").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shots", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "James Harden;1;3", w.Body.String())
	})

	t.Run("no rows renders empty list", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(t, setupTestDB(t), "James Harden").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shots", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "James Harden", w.Body.String())
	})

	t.Run("database failure gives uniform message", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.Migrator().DropTable(&model.PlayerShot{}))

		w := httptest.NewRecorder()
		setupRouter(t, db, "James Harden").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shots", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "An error occurred...", w.Body.String())
	})
}
