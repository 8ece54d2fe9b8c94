package service

import (
	"context"
	"testing"

	"cycle-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditServiceWritesMetadata(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(quietLogger(), repo)
	actor := uuid.New()

	require.NoError(t, svc.LogCreate(context.Background(), &actor, entity.AuditActionDoctorCreate, "doctor", "d-1", map[string]string{"name": "Dr. Sari"}))
	require.NoError(t, svc.LogUpdate(context.Background(), nil, entity.AuditActionAppointmentComplete, "appointment", "a-1", "pending", "completed"))

	require.Len(t, repo.logs, 2)
	assert.Equal(t, &actor, repo.logs[0].UserID)
	assert.Equal(t, "doctor", repo.logs[0].Metadata["entity"])
	assert.Nil(t, repo.logs[0].Metadata["old_value"])

	assert.Nil(t, repo.logs[1].UserID)
	assert.Equal(t, "pending", repo.logs[1].Metadata["old_value"])
	assert.Equal(t, "completed", repo.logs[1].Metadata["new_value"])
}
