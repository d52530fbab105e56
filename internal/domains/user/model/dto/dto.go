package dto

import (
	"net/http"
	"time"

	"hotel/internal/domains/user/model"
	"hotel/permissions"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string  `json:"email"               validate:"required,email"`
	Password string  `json:"password"            validate:"required,min=8,max=72"`
	FullName *string `json:"full_name,omitempty"`
	Role     string  `json:"role"                validate:"required,oneof=super_admin manager receptionist chef housekeeper auditor accountant custom"`
}

// ToModel seeds the permission map with the role's defaults from the catalog.
func (r *CreateUserRequest) ToModel(actor, hashedPassword string, catalog *permissions.Catalog) model.User {
	now := timezone.Now()
	role := permissions.Role(r.Role)

	return model.User{
		ID:          uuid.NewString(),
		Email:       shared.NormalizeEmail(r.Email),
		Password:    hashedPassword,
		FullName:    r.FullName,
		Role:        string(role),
		Permissions: catalog.DefaultAccess(role),
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

// UpdateUserRequest changes profile, role or active flag. Permissions have their own endpoints.
type UpdateUserRequest struct {
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Role     *string `db:"role"      json:"role,omitempty"      validate:"omitempty,oneof=super_admin manager receptionist chef housekeeper auditor accountant custom"`
	Active   *bool   `db:"active"    json:"active,omitempty"`
}

func (r UpdateUserRequest) Empty() bool {
	return r.FullName == nil && r.Role == nil && r.Active == nil
}

type ReplacePermissionsRequest struct {
	Permissions permissions.AccessMap `json:"permissions" validate:"required"`
}

type ToggleSectionRequest struct {
	Portal  string `json:"portal"  validate:"required"`
	Section string `json:"section" validate:"required"`
	Enabled *bool  `json:"enabled" validate:"required"`
}

type UserResponse struct {
	ID          string                `json:"id"`
	Email       string                `json:"email"`
	FullName    *string               `json:"full_name,omitempty"`
	Role        string                `json:"role"`
	Permissions permissions.AccessMap `json:"permissions"`
	LastLogin   *time.Time            `json:"last_login,omitempty"`
	Active      bool                  `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Role = model.Role
	r.Permissions = model.Permissions
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)

	if r.Permissions == nil {
		r.Permissions = permissions.AccessMap{}
	}
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

// AccessResponse is the resolved lock/unlock matrix the admin panel renders its navigation from.
type AccessResponse struct {
	UserID     string                    `json:"user_id"`
	Role       permissions.Role          `json:"role"`
	FullAccess bool                      `json:"full_access"`
	Portals    []permissions.PortalState `json:"portals"`
}

// Filter reads ?q= (email or name), ?role= and ?active= from the query string.
func Filter(r *http.Request) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if q := r.URL.Query().Get(constant.RequestParamSearch); q != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_email", Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: q, Table: model.TableName},
				gDto.Filter{ArgName: "search_name", Field: model.FieldFullName, Operator: gDto.FilterOperatorLike, Value: q, Table: model.TableName},
			},
		})
	}

	if role := r.URL.Query().Get(model.FieldRole); role != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field: model.FieldRole, Operator: gDto.FilterOperatorEq, Value: role, Table: model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field: model.FieldActive, Operator: gDto.FilterOperatorEq, Value: *active, Table: model.TableName,
		})
	}

	return filter
}
