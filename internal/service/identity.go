package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"face-attendance/backend/internal/repository"
)

// ErrNameUnusable 姓名规范化后为空，无法推导邮箱
var ErrNameUnusable = errors.New("姓名不含可用字符，无法生成邮箱")

// identityGenerator 注册号与邮箱的派生逻辑
//
// 注册号格式：<年份>-<机构代码>-<4位序号>，序号取当年已有最大值加一。
// 邮箱格式：姓名规范化后取首末两段，单段姓名只用一段；冲突时追加递增数字。
type identityGenerator struct {
	repo        *repository.Repository
	orgCode     string
	emailDomain string
	now         func() time.Time
}

func newIdentityGenerator(repo *repository.Repository, orgCode, emailDomain string) *identityGenerator {
	return &identityGenerator{
		repo:        repo,
		orgCode:     orgCode,
		emailDomain: emailDomain,
		now:         time.Now,
	}
}

// NextRegNo 计算下一个注册号
// 扫描当年全部已有编号取最大序号；无法解析的序号跳过，不中断扫描
func (g *identityGenerator) NextRegNo(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("%d-%s-", g.now().Year(), g.orgCode)

	regNos, err := g.repo.User.ListRegNos(ctx, prefix)
	if err != nil {
		return "", err
	}

	maxSuffix := 0
	for _, rn := range regNos {
		n, err := strconv.Atoi(strings.TrimPrefix(rn, prefix))
		if err != nil || n < 0 {
			continue
		}
		if n > maxSuffix {
			maxSuffix = n
		}
	}

	return fmt.Sprintf("%s%04d", prefix, maxSuffix+1), nil
}

// DeriveEmail 根据姓名派生唯一邮箱
// 与已有邮箱大小写不敏感比较，冲突时在本地部分追加 1、2、… 直到唯一
func (g *identityGenerator) DeriveEmail(ctx context.Context, name string) (string, error) {
	parts := normalizeName(name)
	if len(parts) == 0 {
		return "", ErrNameUnusable
	}

	local := parts[0]
	if len(parts) > 1 {
		local = parts[0] + "." + parts[len(parts)-1]
	}

	candidate := local + "@" + g.emailDomain
	for counter := 1; ; counter++ {
		_, err := g.repo.User.GetByEmail(ctx, candidate)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s%d@%s", local, counter, g.emailDomain)
	}
}

// normalizeName 姓名规范化：去变音符号、转小写、仅保留字母与空格，按空格切分
func normalizeName(name string) []string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		ascii = strings.ToLower(strings.TrimSpace(name))
	}

	var b strings.Builder
	for _, r := range ascii {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}

	return strings.Fields(b.String())
}
