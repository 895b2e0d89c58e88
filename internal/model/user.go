package model

// 用户角色
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

// User 用户模型，密码只存 bcrypt 哈希
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"type:varchar(64);uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Role         string `json:"role" gorm:"type:varchar(16);not null;default:'customer'"`
}

func (User) TableName() string { return "users" }

// Identity 请求方身份，来自已验证的访问令牌
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsStaff 员工角色判定，员工专属操作统一走这里
func (i *Identity) IsStaff() bool { return i != nil && i.Role == RoleStaff }
