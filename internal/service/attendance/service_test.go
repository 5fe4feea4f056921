package attendance

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/attendance"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/notification"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----- fakes -----

type fakeAttendanceRepo struct {
	records    map[string]attendance.Attendance
	nextID     int
	failCreate bool
	swept      int64
	sweptDate  time.Time
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	if r.failCreate {
		return attendance.Attendance{}, errors.New("insert failed")
	}
	r.nextID++
	a.ID = "att-" + strconv.Itoa(r.nextID)
	r.records[a.ID] = a
	return a, nil
}

func (r *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	a, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (r *fakeAttendanceRepo) GetByIDForUpdate(ctx context.Context, id string) (attendance.Attendance, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	for _, a := range r.records {
		if a.UserID == userID && a.Date.Equal(date) && !a.IsDeleted {
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error {
	if _, ok := r.records[a.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	r.records[a.ID] = a
	return nil
}

func (r *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	delete(r.records, id)
	return nil
}

func (r *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int, error) {
	return nil, 0, nil
}

func (r *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range r.records {
		if a.UserID == userID && !a.IsDeleted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) MarkAbsentees(ctx context.Context, date time.Time, remarks string) (int64, error) {
	r.sweptDate = date
	return r.swept, nil
}

type fakeUserRepo struct {
	users map[string]user.User
	staff []user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }

func (r *fakeUserRepo) UpdateStatus(ctx context.Context, id string, status user.AccountStatus) error {
	return nil
}

func (r *fakeUserRepo) SetHoursTarget(ctx context.Context, id string, hours int) error { return nil }

func (r *fakeUserRepo) AddRenderedHours(ctx context.Context, id string, delta float64) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.TotalRenderedHours += delta
	if u.TotalRenderedHours < 0 {
		u.TotalRenderedHours = 0
	}
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) ListByRole(ctx context.Context, role user.Role, status *user.AccountStatus) ([]user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ListStaff(ctx context.Context) ([]user.User, error) { return r.staff, nil }

func (r *fakeUserRepo) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

type fakeFileService struct {
	uploads    []string
	deleted    []string
	failUpload bool
}

func (f *fakeFileService) UploadProfileImage(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	return "profiles/" + userID + ".jpg", nil
}

func (f *fakeFileService) UploadAttendanceProof(ctx context.Context, userID string, date time.Time, file io.Reader, filename string) (string, error) {
	if f.failUpload {
		return "", errors.New("upload failed")
	}
	path := "attendance/" + date.Format("2006-01-02") + "/" + userID + ".jpg"
	f.uploads = append(f.uploads, path)
	return path, nil
}

func (f *fakeFileService) UploadAttendanceCapture(ctx context.Context, userID string, date time.Time, dataURL string) (string, error) {
	return f.UploadAttendanceProof(ctx, userID, date, nil, "capture.jpg")
}

func (f *fakeFileService) UploadDocument(ctx context.Context, userID string, file io.Reader, filename string, kind string) (string, error) {
	return "documents/" + userID + "/" + filename, nil
}

func (f *fakeFileService) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeFileService) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost/" + path, nil
}

type fakeNotifier struct {
	sent []notification.Notification
}

func (n *fakeNotifier) Notify(ctx context.Context, msg notification.Notification) error {
	n.sent = append(n.sent, msg)
	return nil
}

func (n *fakeNotifier) NotifyMany(ctx context.Context, recipientIDs []string, msg notification.Notification) error {
	for range recipientIDs {
		n.sent = append(n.sent, msg)
	}
	return nil
}

func (n *fakeNotifier) List(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]notification.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) CountUnread(ctx context.Context, recipientID string) (int, error) {
	return 0, nil
}

func (n *fakeNotifier) MarkRead(ctx context.Context, recipientID string, id string) error { return nil }

func (n *fakeNotifier) MarkAllRead(ctx context.Context, recipientID string) error { return nil }

func (n *fakeNotifier) Delete(ctx context.Context, recipientID string, id string) error { return nil }

// ----- harness -----

type harness struct {
	svc      *AttendanceServiceImpl
	repo     *fakeAttendanceRepo
	users    *fakeUserRepo
	files    *fakeFileService
	notifier *fakeNotifier
}

func intern(id string, target int, rendered float64) user.User {
	return user.User{
		ID:                 id,
		Role:               user.RoleIntern,
		Status:             user.StatusApproved,
		FirstName:          "Maria",
		LastName:           "Santos",
		HoursToRender:      &target,
		TotalRenderedHours: rendered,
	}
}

func newHarness(t *testing.T, users ...user.User) *harness {
	t.Helper()

	h := &harness{
		repo:     newFakeAttendanceRepo(),
		users:    newFakeUserRepo(users...),
		files:    &fakeFileService{},
		notifier: &fakeNotifier{},
	}
	h.svc = NewAttendanceService(nil, h.repo, h.users, h.files, h.notifier)
	h.svc.runTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return fn(nil)
	}
	return h
}

func (h *harness) total(t *testing.T, userID string) float64 {
	t.Helper()
	u, err := h.users.GetByID(context.Background(), userID)
	require.NoError(t, err)
	return u.TotalRenderedHours
}

func (h *harness) setNow(t time.Time) {
	h.svc.now = func() time.Time { return t }
}

func on(hour, min int) time.Time {
	return time.Date(2026, 3, 16, hour, min, 0, 0, time.UTC)
}

func capture() *string {
	s := "data:image/png;base64,aGVsbG8="
	return &s
}

// ----- clock-in -----

func TestClockInRecordsLateness(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	h.setNow(on(8, 2))

	rec, err := h.svc.ClockIn(context.Background(), attendance.ClockInRequest{
		UserID:        "u1",
		Session:       "whole",
		CameraCapture: capture(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, rec.LateMinutes)
	assert.Equal(t, attendance.StatusPending, rec.Status)
	assert.Equal(t, attendance.SessionWhole, rec.Session)
	require.NotNil(t, rec.TimeIn)
	assert.Equal(t, on(8, 2), *rec.TimeIn)
	require.NotNil(t, rec.ProofPath)
	assert.Nil(t, rec.RenderedHours)
}

func TestClockInOnTime(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	h.setNow(on(13, 0))

	rec, err := h.svc.ClockIn(context.Background(), attendance.ClockInRequest{
		UserID:        "u1",
		Session:       "afternoon",
		CameraCapture: capture(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, rec.LateMinutes)
}

func TestClockInOutsideWindow(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	h.setNow(on(7, 59))

	_, err := h.svc.ClockIn(context.Background(), attendance.ClockInRequest{
		UserID:        "u1",
		Session:       "whole",
		CameraCapture: capture(),
	})
	assert.ErrorIs(t, err, attendance.ErrOutsideSessionWindow)
}

func TestClockInOutsideWindowWinsOverMissingProof(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	h.setNow(on(7, 59))

	_, err := h.svc.ClockIn(context.Background(), attendance.ClockInRequest{
		UserID:  "u1",
		Session: "whole",
	})
	assert.ErrorIs(t, err, attendance.ErrOutsideSessionWindow)
}

func TestClockInMissingProofFailsAfterHoursChecks(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	h.setNow(on(8, 30))

	_, err := h.svc.ClockIn(context.Background(), attendance.ClockInRequest{
		UserID:  "u1",
		Session: "whole",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "proof", verrs[0].Field)
}

func TestClockInHoursCompleteWinsOverMissingProof(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 240))
	h.setNow(on(8, 30))

	_, err := h.svc.ClockIn(context.Background(), attendance.ClockInRequest{
		UserID:  "u1",
		Session: "whole",
	})
	assert.ErrorIs(t, err, attendance.ErrHoursComplete)
}

func TestClockInTwiceRejected(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	h.setNow(on(8, 30))

	req := attendance.ClockInRequest{UserID: "u1", Session: "whole", CameraCapture: capture()}
	_, err := h.svc.ClockIn(context.Background(), req)
	require.NoError(t, err)

	_, err = h.svc.ClockIn(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyTimedIn)
}

func TestClockInWithoutHoursTarget(t *testing.T) {
	u := intern("u1", 0, 0)
	u.HoursToRender = nil
	h := newHarness(t, u)
	h.setNow(on(8, 30))

	_, err := h.svc.ClockIn(context.Background(), attendance.ClockInRequest{
		UserID:        "u1",
		Session:       "whole",
		CameraCapture: capture(),
	})
	assert.ErrorIs(t, err, attendance.ErrHoursTargetNotSet)
}

func TestClockInAfterHoursComplete(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 240))
	h.setNow(on(8, 30))

	_, err := h.svc.ClockIn(context.Background(), attendance.ClockInRequest{
		UserID:        "u1",
		Session:       "whole",
		CameraCapture: capture(),
	})
	assert.ErrorIs(t, err, attendance.ErrHoursComplete)
}

func TestClockInCleansUpProofWhenSaveFails(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	h.repo.failCreate = true
	h.setNow(on(8, 30))

	_, err := h.svc.ClockIn(context.Background(), attendance.ClockInRequest{
		UserID:        "u1",
		Session:       "whole",
		CameraCapture: capture(),
	})
	require.Error(t, err)
	require.Len(t, h.files.uploads, 1)
	assert.Equal(t, h.files.uploads, h.files.deleted)
}

func TestClockInReversesSelfDeclaredAbsence(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	h.setNow(on(8, 30))

	absent, err := h.svc.MarkAbsent(context.Background(), attendance.MarkAbsentRequest{UserID: "u1"})
	require.NoError(t, err)

	rec, err := h.svc.ClockIn(context.Background(), attendance.ClockInRequest{
		UserID:        "u1",
		Session:       "whole",
		CameraCapture: capture(),
	})
	require.NoError(t, err)

	assert.Equal(t, absent.ID, rec.ID, "should reuse the absence row")
	assert.False(t, rec.IsAbsent)
	assert.Equal(t, attendance.StatusPending, rec.Status)
}

// ----- clock-out -----

func clockedIn(t *testing.T, h *harness, userID string, session string, inAt time.Time) attendance.Attendance {
	t.Helper()
	h.setNow(inAt)
	rec, err := h.svc.ClockIn(context.Background(), attendance.ClockInRequest{
		UserID:        userID,
		Session:       session,
		CameraCapture: capture(),
	})
	require.NoError(t, err)
	return rec
}

func TestClockOutComputesHoursAndOvertime(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	clockedIn(t, h, "u1", "whole", on(8, 0))

	h.setNow(on(17, 30))
	rec, err := h.svc.ClockOut(context.Background(), attendance.ClockOutRequest{UserID: "u1"})
	require.NoError(t, err)

	require.NotNil(t, rec.RenderedHours)
	require.NotNil(t, rec.Overtime)
	assert.InDelta(t, 8.5, *rec.RenderedHours, 0.001)
	assert.InDelta(t, 0.5, *rec.Overtime, 0.001)
	assert.Equal(t, attendance.StatusPending, rec.Status, "hours await review")

	// Clock-out never moves the owner's total
	u, _ := h.users.GetByID(context.Background(), "u1")
	assert.Zero(t, u.TotalRenderedHours)
}

func TestClockOutShortMorningSkipsBreakDeduction(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	clockedIn(t, h, "u1", "morning", on(8, 5))

	h.setNow(on(10, 25))
	rec, err := h.svc.ClockOut(context.Background(), attendance.ClockOutRequest{UserID: "u1"})
	require.NoError(t, err)

	require.NotNil(t, rec.RenderedHours)
	assert.InDelta(t, 2.33, *rec.RenderedHours, 0.001)
	assert.InDelta(t, 0, *rec.Overtime, 0.001)
}

func TestClockOutEarlyTimeoutRemark(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	clockedIn(t, h, "u1", "whole", on(8, 0))

	h.setNow(on(16, 0))
	rec, err := h.svc.ClockOut(context.Background(), attendance.ClockOutRequest{UserID: "u1"})
	require.NoError(t, err)

	require.NotNil(t, rec.Remarks)
	assert.Contains(t, *rec.Remarks, "Early timeout from whole session")
}

func TestClockOutWithinLeewayHasNoRemark(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	clockedIn(t, h, "u1", "whole", on(8, 0))

	h.setNow(on(16, 45))
	rec, err := h.svc.ClockOut(context.Background(), attendance.ClockOutRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Nil(t, rec.Remarks)
}

func TestClockOutWithoutTimeIn(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	h.setNow(on(17, 0))

	_, err := h.svc.ClockOut(context.Background(), attendance.ClockOutRequest{UserID: "u1"})
	assert.ErrorIs(t, err, attendance.ErrNoTimeInRecord)
}

func TestClockOutTwiceRejected(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	clockedIn(t, h, "u1", "whole", on(8, 0))

	h.setNow(on(17, 0))
	_, err := h.svc.ClockOut(context.Background(), attendance.ClockOutRequest{UserID: "u1"})
	require.NoError(t, err)

	_, err = h.svc.ClockOut(context.Background(), attendance.ClockOutRequest{UserID: "u1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyTimedOut)
}

// ----- absence -----

func TestMarkAbsentCreatesAbsenceRecord(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	h.setNow(on(9, 0))

	reason := "medical appointment"
	rec, err := h.svc.MarkAbsent(context.Background(), attendance.MarkAbsentRequest{
		UserID:  "u1",
		Remarks: &reason,
	})
	require.NoError(t, err)

	assert.True(t, rec.IsAbsent)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Nil(t, rec.TimeIn)
	require.NotNil(t, rec.Remarks)
	assert.Equal(t, reason, *rec.Remarks)
}

func TestMarkAbsentAfterClockInRejected(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	clockedIn(t, h, "u1", "whole", on(8, 0))

	_, err := h.svc.MarkAbsent(context.Background(), attendance.MarkAbsentRequest{UserID: "u1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyTimedIn)
}

// ----- review and accumulator transitions -----

// fullDay clocks an intern through a whole session 08:00-17:00, leaving a
// Pending record with 8.00 rendered hours.
func fullDay(t *testing.T, h *harness, userID string) attendance.Attendance {
	t.Helper()
	clockedIn(t, h, userID, "whole", on(8, 0))
	h.setNow(on(17, 0))
	rec, err := h.svc.ClockOut(context.Background(), attendance.ClockOutRequest{UserID: userID})
	require.NoError(t, err)
	require.NotNil(t, rec.RenderedHours)
	require.InDelta(t, 8.0, *rec.RenderedHours, 0.001)
	return rec
}

func approve(t *testing.T, h *harness, id string) attendance.Attendance {
	t.Helper()
	rec, err := h.svc.Review(context.Background(), attendance.ReviewRequest{
		AttendanceID: id,
		ReviewerID:   "staff1",
		Approved:     true,
	})
	require.NoError(t, err)
	return rec
}

func reject(t *testing.T, h *harness, id string) attendance.Attendance {
	t.Helper()
	reason := "proof photo unreadable"
	rec, err := h.svc.Review(context.Background(), attendance.ReviewRequest{
		AttendanceID: id,
		ReviewerID:   "staff1",
		Approved:     false,
		Remarks:      &reason,
	})
	require.NoError(t, err)
	return rec
}

func TestApproveCreditsRenderedHours(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	rec := fullDay(t, h, "u1")

	reviewed := approve(t, h, rec.ID)

	assert.Equal(t, attendance.StatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ApprovedBy)
	assert.Equal(t, "staff1", *reviewed.ApprovedBy)
	assert.InDelta(t, 8.0, h.total(t, "u1"), 0.001)
}

func TestRejectAfterApproveWithdrawsExactlyRendered(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	rec := fullDay(t, h, "u1")

	approve(t, h, rec.ID)
	require.InDelta(t, 8.0, h.total(t, "u1"), 0.001)

	rejected := reject(t, h, rec.ID)
	assert.Equal(t, attendance.StatusRejected, rejected.Status)
	assert.InDelta(t, 0, h.total(t, "u1"), 0.001)

	// Re-approving restores the same amount
	approve(t, h, rec.ID)
	assert.InDelta(t, 8.0, h.total(t, "u1"), 0.001)
}

func TestRejectWithoutRemarksRefused(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	rec := fullDay(t, h, "u1")
	approve(t, h, rec.ID)

	_, err := h.svc.Review(context.Background(), attendance.ReviewRequest{
		AttendanceID: rec.ID,
		ReviewerID:   "staff1",
		Approved:     false,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.InDelta(t, 8.0, h.total(t, "u1"), 0.001, "failed review must not move the total")
}

func TestReviewMissingRecord(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))

	_, err := h.svc.Review(context.Background(), attendance.ReviewRequest{
		AttendanceID: "nope",
		ReviewerID:   "staff1",
		Approved:     true,
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestSoftDeleteApprovedWithdrawsAndRestoreRecredits(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	rec := fullDay(t, h, "u1")
	approve(t, h, rec.ID)

	require.NoError(t, h.svc.SoftDelete(context.Background(), rec.ID))
	assert.InDelta(t, 0, h.total(t, "u1"), 0.001)

	// Deleting an already-deleted record changes nothing
	require.NoError(t, h.svc.SoftDelete(context.Background(), rec.ID))
	assert.InDelta(t, 0, h.total(t, "u1"), 0.001)

	require.NoError(t, h.svc.Restore(context.Background(), rec.ID))
	assert.InDelta(t, 8.0, h.total(t, "u1"), 0.001)

	// Restoring an already-restored record changes nothing
	require.NoError(t, h.svc.Restore(context.Background(), rec.ID))
	assert.InDelta(t, 8.0, h.total(t, "u1"), 0.001)
}

func TestSoftDeleteRestoreNeverApprovedLeavesTotalAlone(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	rec := fullDay(t, h, "u1")

	require.NoError(t, h.svc.SoftDelete(context.Background(), rec.ID))
	assert.Zero(t, h.total(t, "u1"))

	require.NoError(t, h.svc.Restore(context.Background(), rec.ID))
	assert.Zero(t, h.total(t, "u1"))

	stored, err := h.repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsDeleted)
	assert.Equal(t, attendance.StatusPending, stored.Status)
}

func TestPurgeRemovesRecordProofAndHours(t *testing.T) {
	h := newHarness(t, intern("u1", 240, 0))
	rec := fullDay(t, h, "u1")
	approve(t, h, rec.ID)
	require.NotNil(t, rec.ProofPath)

	require.NoError(t, h.svc.Purge(context.Background(), rec.ID))

	assert.InDelta(t, 0, h.total(t, "u1"), 0.001)
	assert.Contains(t, h.files.deleted, *rec.ProofPath)

	_, err := h.repo.GetByID(context.Background(), rec.ID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	assert.ErrorIs(t, h.svc.SoftDelete(context.Background(), rec.ID), attendance.ErrAttendanceNotFound)
}

// ----- sweep -----

func TestAbsenceSweepRefusesBeforeClosing(t *testing.T) {
	h := newHarness(t)
	h.setNow(on(16, 0))

	_, err := h.svc.RunAbsenceSweep(context.Background(), on(0, 0))
	assert.ErrorIs(t, err, attendance.ErrSweepTooEarly)
}

func TestAbsenceSweepRunsAfterClosing(t *testing.T) {
	h := newHarness(t)
	h.repo.swept = 3
	h.setNow(on(17, 0))

	marked, err := h.svc.RunAbsenceSweep(context.Background(), on(0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(3), marked)
	assert.Equal(t, on(0, 0), h.repo.sweptDate)
}

func TestAbsenceSweepRunsForPastDates(t *testing.T) {
	h := newHarness(t)
	h.repo.swept = 1
	h.setNow(time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC))

	marked, err := h.svc.RunAbsenceSweep(context.Background(), on(0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)
}
