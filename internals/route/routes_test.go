package routes_test

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lesku_backend/internals/configs"
	adminModel "lesku_backend/internals/features/admins/model"
	authService "lesku_backend/internals/features/auth/service"
	communityModel "lesku_backend/internals/features/community/model"
	financeModel "lesku_backend/internals/features/finance/model"
	paymentModel "lesku_backend/internals/features/finance/payment/model"
	paymentService "lesku_backend/internals/features/finance/payment/service"
	financeService "lesku_backend/internals/features/finance/service"
	studentModel "lesku_backend/internals/features/students/model"
	routes "lesku_backend/internals/route"
)

type apiEnvelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	configs.JWTExpiryDays = 90
	t.Cleanup(func() { configs.JWTSecret = prev })

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&studentModel.StudentModel{},
		&adminModel.AdminModel{},
		&financeModel.FeeSnapshotModel{},
		&paymentModel.FeePaymentModel{},
		&communityModel.ImagePostModel{},
	))

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func seedAdmin(t *testing.T, db *gorm.DB) string {
	t.Helper()
	require.NoError(t, db.Create(&adminModel.AdminModel{
		AdminName: "Pak Budi",
		AdminCode: "rahasia-123",
	}).Error)
	token, err := authService.IssueAdminToken(db, "Pak Budi", "rahasia-123")
	require.NoError(t, err)
	return token
}

func seedStudentWithToken(t *testing.T, db *gorm.DB) (studentModel.StudentModel, string) {
	t.Helper()
	s := studentModel.StudentModel{
		StudentFullName: "Aarav Sharma",
		StudentPhone:    "9876543210",
		StudentUUID:     "ab12cd34",
		StudentClass:    "8",
	}
	require.NoError(t, db.Create(&s).Error)
	token, err := authService.IssueStudentToken(db, s.StudentUUID)
	require.NoError(t, err)
	return s, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, apiEnvelope) {
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
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env apiEnvelope
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &env)
	return resp, env
}

func TestAdminLogin(t *testing.T) {
	app, db := setupApp(t)
	seedAdmin(t, db)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
	}{
		{name: "kode benar", body: map[string]string{"admin_name": "Pak Budi", "admin_code": "rahasia-123"}, wantStatus: 200},
		{name: "kode salah", body: map[string]string{"admin_name": "Pak Budi", "admin_code": "salah"}, wantStatus: 400},
		{name: "body kurang", body: map[string]string{"admin_name": "Pak Budi"}, wantStatus: 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := doJSON(t, app, fiber.MethodPost, "/api/admin-login", "", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == 200 {
				var data map[string]string
				require.NoError(t, json.Unmarshal(env.Data, &data))
				assert.NotEmpty(t, data["token"])
			}
		})
	}
}

func TestStudentLogin(t *testing.T) {
	app, db := setupApp(t)
	seedStudentWithToken(t, db)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/std-login", "", map[string]string{"uuid": "ab12cd34"})
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/std-login", "", map[string]string{"uuid": "deadbeef"})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAddStudent(t *testing.T) {
	app, db := setupApp(t)
	adminToken := seedAdmin(t, db)

	body := map[string]string{"full_name": "Diya Patel", "phone": "9000000001", "std_class": "7"}

	// Tanpa token → 401.
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/a/add-std", "", body)
	assert.Equal(t, 401, resp.StatusCode)

	// Dengan token admin → 200.
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/a/add-std", adminToken, body)
	require.Equal(t, 200, resp.StatusCode)
	var created map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Len(t, created["uuid"], 8)
	assert.Equal(t, false, created["is_paid"])

	// Duplikat phone → 400.
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/a/add-std", adminToken, body)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestStudentListRequiresAdmin(t *testing.T) {
	app, db := setupApp(t)
	adminToken := seedAdmin(t, db)
	_, studentToken := seedStudentWithToken(t, db)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/a/std-list", "", nil)
	assert.Equal(t, 401, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/a/std-list", studentToken, nil)
	assert.Equal(t, 403, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/a/std-list", adminToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
}

func TestUpdatePayment(t *testing.T) {
	app, db := setupApp(t)
	adminToken := seedAdmin(t, db)
	student, _ := seedStudentWithToken(t, db)

	resp, env := doJSON(t, app, fiber.MethodPut, "/api/a/update-payment/"+student.StudentUUID, adminToken,
		map[string]bool{"is_paid": true})
	require.Equal(t, 200, resp.StatusCode)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, true, updated["is_paid"])

	// UUID tidak dikenal → 404, tidak ada record baru.
	resp, _ = doJSON(t, app, fiber.MethodPut, "/api/a/update-payment/ffffffff", adminToken,
		map[string]bool{"is_paid": true})
	assert.Equal(t, 404, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&studentModel.StudentModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStudentProfile(t *testing.T) {
	app, db := setupApp(t)
	_, studentToken := seedStudentWithToken(t, db)

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/u/profile", studentToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	var profile map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Aarav Sharma", profile["full_name"])

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/u/profile", "token-ngawur", nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestCommunityList(t *testing.T) {
	app, db := setupApp(t)
	_, studentToken := seedStudentWithToken(t, db)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/u/community", studentToken, nil)
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/u/community", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestFeeSnapshotByYear(t *testing.T) {
	app, db := setupApp(t)
	adminToken := seedAdmin(t, db)
	seedStudentWithToken(t, db)

	now := time.Date(2026, time.March, 7, 23, 0, 0, 0, time.UTC)
	require.NoError(t, financeService.SnapshotMonth(db, now))

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/a/fee-snapshots/2026", adminToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	var snap struct {
		Year   int                         `json:"year"`
		Months map[string][]map[string]any `json:"months"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Equal(t, 2026, snap.Year)
	assert.Len(t, snap.Months["March"], 1)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/a/fee-snapshots/2027", adminToken, nil)
	assert.Equal(t, 404, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/a/fee-snapshots/abc", adminToken, nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func uploadRequest(t *testing.T, token string, nImages int) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("desc", "pengumuman"))
	require.NoError(t, w.WriteField("for_class", "8"))
	for i := 0; i < nImages; i++ {
		part, err := w.CreateFormFile("images", "foto.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/a/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestUploadSavesImages(t *testing.T) {
	app, db := setupApp(t)
	adminToken := seedAdmin(t, db)
	t.Setenv("UPLOAD_DIR", t.TempDir())

	resp, err := app.Test(uploadRequest(t, adminToken, 2), -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(raw, &env))
	var data struct {
		Paths []string `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Paths, 2)
	for _, p := range data.Paths {
		_, statErr := os.Stat(p)
		assert.NoError(t, statErr, "file %s harus tersimpan di disk", p)
	}

	var count int64
	require.NoError(t, db.Model(&communityModel.ImagePostModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUploadRejectsEmptyForm(t *testing.T) {
	app, db := setupApp(t)
	adminToken := seedAdmin(t, db)

	resp, err := app.Test(uploadRequest(t, adminToken, 0), -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUploadRejectsTooManyImages(t *testing.T) {
	app, db := setupApp(t)
	adminToken := seedAdmin(t, db)
	t.Setenv("UPLOAD_DIR", t.TempDir())

	resp, err := app.Test(uploadRequest(t, adminToken, 11), -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	// Tidak ada post yang tersimpan.
	var count int64
	require.NoError(t, db.Model(&communityModel.ImagePostModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func webhookSignature(orderID, statusCode, grossAmount, key string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + key))
	return hex.EncodeToString(sum[:])
}

func TestPaymentWebhook(t *testing.T) {
	app, db := setupApp(t)
	student, _ := seedStudentWithToken(t, db)
	paymentService.InitMidtrans("test-server-key")

	payment := paymentModel.FeePaymentModel{
		FeePaymentOrderID:     "FEE-ab12cd34-1",
		FeePaymentStudentUUID: student.StudentUUID,
		FeePaymentAmount:      150000,
		FeePaymentStatus:      paymentModel.StatusPending,
	}
	require.NoError(t, db.Create(&payment).Error)

	// Signature palsu → 401, tidak ada yang berubah.
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/payments/notification", "", map[string]string{
		"order_id":           "FEE-ab12cd34-1",
		"transaction_status": "settlement",
		"status_code":        "200",
		"gross_amount":       "150000.00",
		"signature_key":      "totally-forged",
	})
	assert.Equal(t, 401, resp.StatusCode)

	var s studentModel.StudentModel
	require.NoError(t, db.Where("student_uuid = ?", student.StudentUUID).First(&s).Error)
	assert.False(t, s.StudentIsPaid)

	// Signature sah → 200 tanpa perlu bearer token (endpoint publik).
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/payments/notification", "", map[string]string{
		"order_id":           "FEE-ab12cd34-1",
		"transaction_status": "settlement",
		"status_code":        "200",
		"gross_amount":       "150000.00",
		"signature_key":      webhookSignature("FEE-ab12cd34-1", "200", "150000.00", "test-server-key"),
	})
	assert.Equal(t, 200, resp.StatusCode)

	require.NoError(t, db.Where("student_uuid = ?", student.StudentUUID).First(&s).Error)
	assert.True(t, s.StudentIsPaid)
}
