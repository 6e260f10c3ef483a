package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Sittipanpee/dessert-site/configs"
	"github.com/Sittipanpee/dessert-site/entity"
	"github.com/Sittipanpee/dessert-site/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassphrase = "หวานมาก"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Admin{}, &entity.QueueConfig{},
		&entity.Menu{}, &entity.OptionGroup{}, &entity.Choice{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{},
	))

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassphrase), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Admin{PassphraseHash: string(hash)}).Error)

	cfg := &configs.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		UploadDir: t.TempDir(),
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env struct {
		OK   bool           `json:"ok"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.OK, "body: %s", w.Body.String())
	return env.Data
}

func TestOrderFlowEndToEnd(t *testing.T) {
	r, _ := newTestRouter(t)

	// สั่งครั้งแรกของวัน → คิว 1
	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"customerName":  "สมหญิง",
		"paymentMethod": "promptpay",
		"totalPrice":    165,
		"items": []gin.H{
			{"menuItemId": "m1", "name": "บิงซูมะม่วง", "price": 120, "quantity": 1},
			{"menuItemId": "m3", "name": "เฉาก๊วยนมสด", "price": 45, "quantity": 1},
		},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := dataOf(t, w)
	id := order["id"].(string)
	assert.Equal(t, float64(1), order["queueNumber"])
	assert.Equal(t, "preparing", order["status"])
	assert.True(t, strings.HasPrefix(id, utils.TodayKey()+"-1-"), "id = %s", id)

	// ดูสถานะ
	w = doJSON(t, r, http.MethodGet, "/orders/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	// คิวข้างหน้า + ETA จาก config default (5 นาที/คิว)
	w = doJSON(t, r, http.MethodGet, "/orders/"+id+"/queue", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	pos := dataOf(t, w)
	assert.Equal(t, float64(0), pos["queuesAhead"])
	assert.Equal(t, float64(5), pos["estimatedMinutes"])

	// status นอกระบบ → 422
	w = doJSON(t, r, http.MethodPatch, "/orders/"+id, gin.H{"status": "cancelled"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// mark ready แล้ว mark ซ้ำได้
	w = doJSON(t, r, http.MethodPatch, "/orders/"+id, gin.H{"status": "ready"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPatch, "/orders/"+id, gin.H{"status": "ready"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ready", dataOf(t, w)["status"])

	// order ที่ไม่มี → 404
	w = doJSON(t, r, http.MethodGet, "/orders/2030-01-01-1-zzz", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"customerName":  "",
		"paymentMethod": "cash",
		"items":         []gin.H{{"name": "x", "quantity": 1}},
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"customerName":  "สมชาย",
		"paymentMethod": "cash",
		"items":         []gin.H{},
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueueConfigRequiresAdminToken(t *testing.T) {
	r, _ := newTestRouter(t)

	newCfg := gin.H{
		"promptPayNumber": "0867776666",
		"minutesPerQueue": 8,
		"autoResetTime":   "06:00",
		"currentDayKey":   utils.TodayKey(),
		"nextQueueNumber": 1,
	}

	// ไม่มี token → 401
	w := doJSON(t, r, http.MethodPut, "/queue-config", newCfg, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// login ผิด → 401
	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"passphrase": "เดามั่ว"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// login ถูก → ได้ token
	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"passphrase": testPassphrase}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := dataOf(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodPut, "/queue-config", newCfg, token)
	require.Equal(t, http.StatusOK, w.Code)

	// อ่านกลับ (public) ต้องเห็นค่าที่เซฟ
	w = doJSON(t, r, http.MethodGet, "/queue-config", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := dataOf(t, w)
	assert.Equal(t, "0867776666", got["promptPayNumber"])
	assert.Equal(t, float64(8), got["minutesPerQueue"])
}

func TestUploadProofBindsURLToOrder(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"customerName":  "สมชาย",
		"paymentMethod": "promptpay",
		"totalPrice":    100,
		"items":         []gin.H{{"menuItemId": "m1", "name": "บิงซูมะม่วง", "price": 100, "quantity": 1}},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := dataOf(t, w)["id"].(string)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "slip.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake-jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("orderId", id))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-proof", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	url := dataOf(t, rec)["url"].(string)
	assert.True(t, strings.HasPrefix(url, "/uploads/proofs/"), "url = %s", url)

	// URL ต้องถูก patch เข้า order แล้ว
	w = doJSON(t, r, http.MethodGet, "/orders/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, url, dataOf(t, w)["paymentProofUrl"])

	// ไม่ส่งไฟล์ → 400
	w = doJSON(t, r, http.MethodPost, "/upload-proof", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueueResetEndpoint(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Save(&entity.QueueConfig{
		ID: 1, MinutesPerQueue: 5, CurrentDayKey: "2025-05-31", NextQueueNumber: 9,
	}).Error)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"passphrase": testPassphrase}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := dataOf(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodPost, "/queue-reset", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/queue-config", nil, "")
	got := dataOf(t, w)
	assert.Equal(t, float64(1), got["nextQueueNumber"])
	assert.Equal(t, utils.TodayKey(), got["currentDayKey"])
}
