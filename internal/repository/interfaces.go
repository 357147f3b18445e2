package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/model"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	List(ctx context.Context, filter *model.PatientFilter) ([]*model.Patient, error)
	ListByEstado(ctx context.Context, estado model.Lifecycle) ([]*model.Patient, error)
}

type AdmissionRepository interface {
	Create(ctx context.Context, admission *model.Admission) error
	Get(ctx context.Context, id uuid.UUID) (*model.Admission, error)
	Update(ctx context.Context, admission *model.Admission) error
	List(ctx context.Context, filter *model.AdmissionFilter) ([]*model.Admission, error)
}

type SecondaryDiagnosisRepository interface {
	Create(ctx context.Context, diagnosis *model.SecondaryDiagnosis) error
	Get(ctx context.Context, id uuid.UUID) (*model.SecondaryDiagnosis, error)
	Update(ctx context.Context, diagnosis *model.SecondaryDiagnosis) error
	List(ctx context.Context, filter *model.SecondaryDiagnosisFilter) ([]*model.SecondaryDiagnosis, error)
	ListByAdmission(ctx context.Context, admissionID uuid.UUID) ([]*model.SecondaryDiagnosis, error)
}

type FileRepository interface {
	Create(ctx context.Context, file *model.File) error
	Get(ctx context.Context, id uuid.UUID) (*model.File, error)
	Update(ctx context.Context, file *model.File) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *model.FileFilter) ([]*model.File, error)
}

type OCRTextRepository interface {
	Create(ctx context.Context, ocr *model.OCRText) error
	Get(ctx context.Context, id uuid.UUID) (*model.OCRText, error)
	Update(ctx context.Context, ocr *model.OCRText) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *model.OCRTextFilter) ([]*model.OCRText, error)
}

type ObservationTypeRepository interface {
	Create(ctx context.Context, obsType *model.ObservationType) error
	Get(ctx context.Context, id uuid.UUID) (*model.ObservationType, error)
	Update(ctx context.Context, obsType *model.ObservationType) error
	List(ctx context.Context, filter *model.ObservationTypeFilter) ([]*model.ObservationType, error)
}

type ObservationRepository interface {
	Create(ctx context.Context, observation *model.Observation) error
	Get(ctx context.Context, id uuid.UUID) (*model.Observation, error)
	Update(ctx context.Context, observation *model.Observation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *model.ObservationFilter) ([]*model.Observation, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *model.ObservationReview) error
	Get(ctx context.Context, id uuid.UUID) (*model.ObservationReview, error)
	Update(ctx context.Context, review *model.ObservationReview) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *model.ReviewFilter) ([]*model.ObservationReview, error)
}

type UserRepository interface {
	CreateWithRole(ctx context.Context, user *model.User, roleID int) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetWithRole(ctx context.Context, id uuid.UUID) (*model.UserWithRole, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	ListWithRole(ctx context.Context, filter *model.UserFilter) ([]*model.UserWithRole, error)
	RoleName(ctx context.Context, userID uuid.UUID) (string, error)
}

type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	Get(ctx context.Context, id int) (*model.Role, error)
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter *model.RoleFilter) ([]*model.Role, error)
}

type UserRoleRepository interface {
	Assign(ctx context.Context, assignment *model.UserRole) error
	Reassign(ctx context.Context, userID uuid.UUID, roleID int) error
	List(ctx context.Context) ([]*model.UserRole, error)
	Remove(ctx context.Context, userID uuid.UUID, roleID int) error
}
