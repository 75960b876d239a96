package schema

import (
	"tour-insight/app/errs"
	"tour-insight/app/model"
)

// UserRecord 用户的输出结构。password 字段输出的是哈希值
type UserRecord struct {
	ID       uint    `json:"id"`
	Realname *string `json:"realname"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Avatar   *string `json:"avatar"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Age      *int    `json:"age"`
	Intro    *string `json:"intro"`
	Addr     *string `json:"addr"`
	Idno     *string `json:"idno"`
	Gender   *string `json:"gender"`
	Job      *string `json:"job"`
	Roles    *string `json:"roles"`
	Deleted  *int    `json:"deleted"`
}

func DumpUser(u *model.User) UserRecord {
	return UserRecord{
		ID:       u.ID,
		Realname: u.Realname,
		Username: u.Username,
		Password: u.Password,
		Avatar:   u.Avatar,
		Phone:    u.Phone,
		Email:    u.Email,
		Age:      u.Age,
		Intro:    u.Intro,
		Addr:     u.Addr,
		Idno:     u.Idno,
		Gender:   u.Gender,
		Job:      u.Job,
		Roles:    u.Roles,
		Deleted:  u.Deleted,
	}
}

// DumpUserOrEmpty 用户不存在时输出空对象
func DumpUserOrEmpty(u *model.User) any {
	if u == nil {
		return struct{}{}
	}
	return DumpUser(u)
}

func DumpUsers(users []model.User) []UserRecord {
	records := make([]UserRecord, 0, len(users))
	for i := range users {
		records = append(records, DumpUser(&users[i]))
	}
	return records
}

// UserQuery 用户列表查询参数
type UserQuery struct {
	ListQuery
	Username string `form:"username"`
}

// Credentials 注册与登录的请求体
type Credentials struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// MaxPasswordBytes bcrypt 只接受不超过 72 字节的密码
const MaxPasswordBytes = 72

// ValidateRegister 注册时用户名和密码都不能为空
func (c *Credentials) ValidateRegister() error {
	if c.Username == nil || *c.Username == "" {
		return errs.Empty("username")
	}
	if c.Password == nil || *c.Password == "" {
		return errs.Empty("password")
	}
	if len(*c.Password) > MaxPasswordBytes {
		return errs.TooLong("password", MaxPasswordBytes)
	}
	return nil
}

// UserCreate 后台新增用户的请求体，密码不由调用方指定
type UserCreate struct {
	Username Optional[string] `json:"username"`
	Realname Optional[string] `json:"realname"`
	Job      Optional[string] `json:"job"`
	Age      Optional[int]    `json:"age"`
	Addr     Optional[string] `json:"addr"`
	Intro    Optional[string] `json:"intro"`
	Phone    Optional[string] `json:"phone"`
	Email    Optional[string] `json:"email"`
}

func (c *UserCreate) Validate() error {
	required := []struct {
		name    string
		present bool
	}{
		{"username", c.Username.Present},
		{"realname", c.Realname.Present},
		{"job", c.Job.Present},
		{"age", c.Age.Present},
		{"addr", c.Addr.Present},
		{"intro", c.Intro.Present},
		{"phone", c.Phone.Present},
		{"email", c.Email.Present},
	}
	for _, f := range required {
		if !f.present {
			return errs.Missing(f.name)
		}
	}
	if isBlank(c.Username) {
		return errs.Empty("username")
	}
	return nil
}

// NewUser 创建未删除的用户，passwordHash 为默认密码的哈希
func (c *UserCreate) NewUser(passwordHash string) *model.User {
	u := &model.User{
		Password: &passwordHash,
		Deleted:  ptr(model.UserActive),
	}
	assign(&u.Username, normalizeOptional(c.Username))
	assign(&u.Realname, c.Realname)
	assign(&u.Job, c.Job)
	assign(&u.Age, c.Age)
	assign(&u.Addr, c.Addr)
	assign(&u.Intro, c.Intro)
	assign(&u.Phone, c.Phone)
	assign(&u.Email, c.Email)
	return u
}

// UserPatch 用户资料的可修改字段，不包含用户名、密码和删除标记
type UserPatch struct {
	Realname Optional[string] `json:"realname"`
	Job      Optional[string] `json:"job"`
	Addr     Optional[string] `json:"addr"`
	Intro    Optional[string] `json:"intro"`
	Phone    Optional[string] `json:"phone"`
	Email    Optional[string] `json:"email"`
	Age      Optional[int]    `json:"age"`
}

func (p *UserPatch) Apply(u *model.User) {
	assign(&u.Realname, p.Realname)
	assign(&u.Job, p.Job)
	assign(&u.Addr, p.Addr)
	assign(&u.Intro, p.Intro)
	assign(&u.Phone, p.Phone)
	assign(&u.Email, p.Email)
	assign(&u.Age, p.Age)
}

func ptr[T any](v T) *T {
	return &v
}
