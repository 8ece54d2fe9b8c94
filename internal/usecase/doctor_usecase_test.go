package usecase

import (
	"context"
	"testing"

	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/delivery/http/middleware"
	"cycle-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoctorFixture(users ...entity.User) (DoctorUsecase, *fakeDoctorRepo, *fakeAuditService) {
	doctors := newFakeDoctorRepo()
	audit := &fakeAuditService{}
	return NewDoctorUsecase(quietLogger(), doctors, newFakeUserRepo(users...), audit), doctors, audit
}

func adminCtx() context.Context {
	return middleware.WithPrincipal(context.Background(), uuid.New(), "admin@example.com", entity.RoleIDAdmin)
}

func createDoctorRequest(name string) *dto.CreateDoctorRequest {
	return &dto.CreateDoctorRequest{
		Name:            name,
		Specialization:  "Obstetrics",
		ExperienceYears: 8,
		AvailableDays:   []string{"Mon", "Wed", "Fri"},
		AvailableTime:   []string{"10:00 AM - 1:00 PM", "3:00 PM - 5:00 PM"},
		ConsultationFee: decimal.RequireFromString("150000.00"),
	}
}

func TestCreateDoctor(t *testing.T) {
	uc, doctors, audit := newDoctorFixture()

	resp, err := uc.CreateDoctor(adminCtx(), createDoctorRequest("Dr. Rina"))
	require.NoError(t, err)
	assert.Equal(t, 4.5, resp.Rating)
	assert.Equal(t, []string{"Mon", "Wed", "Fri"}, resp.AvailableDays)
	assert.Nil(t, resp.UserID)
	assert.True(t, decimal.RequireFromString("150000").Equal(resp.ConsultationFee))

	stored, _ := doctors.FindByID(context.Background(), resp.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "10:00 AM - 1:00 PM, 3:00 PM - 5:00 PM", stored.AvailableTime)
	assert.Equal(t, []string{entity.AuditActionDoctorCreate}, audit.actions)
}

func TestCreateDoctorRejectsNegativeFee(t *testing.T) {
	uc, _, _ := newDoctorFixture()
	req := createDoctorRequest("Dr. Rina")
	req.ConsultationFee = decimal.NewFromInt(-1)

	_, err := uc.CreateDoctor(adminCtx(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateDoctorLinksUser(t *testing.T) {
	user := entity.User{ID: uuid.New(), RoleID: entity.RoleIDDoctor, Email: "rina@example.com"}
	uc, _, _ := newDoctorFixture(user)

	req := createDoctorRequest("Dr. Rina")
	linked := user.ID.String()
	req.UserID = &linked
	resp, err := uc.CreateDoctor(adminCtx(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, user.ID, *resp.UserID)

	// same user cannot back a second doctor
	_, err = uc.CreateDoctor(adminCtx(), req)
	assert.ErrorIs(t, err, ErrUserAlreadyLinked)

	missing := uuid.NewString()
	req.UserID = &missing
	_, err = uc.CreateDoctor(adminCtx(), req)
	assert.ErrorIs(t, err, ErrNotFound)

	bad := "not-a-uuid"
	req.UserID = &bad
	_, err = uc.CreateDoctor(adminCtx(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateDoctorPartial(t *testing.T) {
	user := entity.User{ID: uuid.New(), RoleID: entity.RoleIDDoctor}
	uc, _, audit := newDoctorFixture(user)
	created, err := uc.CreateDoctor(adminCtx(), createDoctorRequest("Dr. Rina"))
	require.NoError(t, err)

	name := "Dr. Rina Putri"
	linked := user.ID.String()
	resp, err := uc.UpdateDoctor(adminCtx(), created.ID, &dto.UpdateDoctorRequest{
		Name:          &name,
		UserID:        &linked,
		AvailableDays: []string{"Tue"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Rina Putri", resp.Name)
	assert.Equal(t, "Obstetrics", resp.Specialization)
	assert.Equal(t, []string{"Tue"}, resp.AvailableDays)
	require.NotNil(t, resp.UserID)

	// relinking the same user to the same doctor is allowed
	_, err = uc.UpdateDoctor(adminCtx(), created.ID, &dto.UpdateDoctorRequest{UserID: &linked})
	require.NoError(t, err)

	fee := decimal.NewFromInt(-5)
	_, err = uc.UpdateDoctor(adminCtx(), created.ID, &dto.UpdateDoctorRequest{ConsultationFee: &fee})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.UpdateDoctor(adminCtx(), uuid.New(), &dto.UpdateDoctorRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{
		entity.AuditActionDoctorCreate,
		entity.AuditActionDoctorUpdate,
		entity.AuditActionDoctorUpdate,
	}, audit.actions)
}

func TestGetDoctors(t *testing.T) {
	uc, _, _ := newDoctorFixture()
	first, err := uc.CreateDoctor(adminCtx(), createDoctorRequest("Dr. B"))
	require.NoError(t, err)
	_, err = uc.CreateDoctor(adminCtx(), createDoctorRequest("Dr. A"))
	require.NoError(t, err)

	got, err := uc.GetDoctor(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. B", got.Name)

	_, err = uc.GetDoctor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := uc.GetAllDoctors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
	assert.Equal(t, "Dr. A", all.Doctors[0].Name)
}
