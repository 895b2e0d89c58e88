package database

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/mini-mall/internal/model"
)

func TestSeedIsIdempotent(t *testing.T) {
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    require.NoError(t, err)
    require.NoError(t, Migrate(db))
    ctx := context.Background()

    require.NoError(t, Seed(ctx, db))
    // 重复执行不产生重复数据
    require.NoError(t, Seed(ctx, db))

    var staff model.User
    require.NoError(t, db.Where("username = ?", "staff").First(&staff).Error)
    assert.Equal(t, model.RoleStaff, staff.Role)
    assert.NotEqual(t, "staff", staff.PasswordHash)

    var userCnt, productCnt int64
    require.NoError(t, db.Model(&model.User{}).Count(&userCnt).Error)
    require.NoError(t, db.Model(&model.Product{}).Count(&productCnt).Error)
    assert.EqualValues(t, 1, userCnt)
    assert.EqualValues(t, 6, productCnt)
}
