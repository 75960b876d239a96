package model

// 用户删除标记
const (
	UserActive  = 0
	UserDeleted = 1
)

// User 平台用户，删除只做逻辑删除
type User struct {
	ID       uint    `gorm:"primarykey"`
	Realname *string `gorm:"size:255;comment:真实姓名"`
	Username *string `gorm:"size:255;index;comment:用户名"`
	Password *string `gorm:"size:255;comment:密码哈希"`
	Avatar   *string `gorm:"size:255"`
	Phone    *string `gorm:"size:255"`
	Email    *string `gorm:"size:255"`
	Age      *int
	Intro    *string `gorm:"size:255"`
	Addr     *string `gorm:"size:100"`
	Idno     *string `gorm:"size:50"`
	Gender   *string `gorm:"size:10"`
	Job      *string `gorm:"size:10"`
	Roles    *string `gorm:"size:50"`
	Deleted  *int    `gorm:"comment:0正常 1已删除"`
}

// TableName 指定表名
func (User) TableName() string {
	return "tb_user"
}

// IsDeleted 是否已被逻辑删除
func (u *User) IsDeleted() bool {
	return u.Deleted != nil && *u.Deleted == UserDeleted
}
