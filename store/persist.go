package store

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/maturomero/huellitas-tpo-front/models"
)

// Persistence mirrors what the browser kept in local storage: the
// serialized session object, plus the cart so it survives restarts.
// Hooks fire after every committed store transition; a failed write is
// logged and absorbed, it never fails the operation.

func saveSession(db *gorm.DB, sess models.Session) {
	rec := models.SessionRecord{
		ID:     sess.ID,
		UserID: sess.UserID,
		Token:  sess.Token,
		Status: string(sess.Status),
	}
	if sess.Profile != nil {
		rec.Role = sess.Profile.Role
		rec.FullName = sess.Profile.FullName
		rec.Email = sess.Profile.Email
	}
	if err := db.Save(&rec).Error; err != nil {
		log.Printf("❌ Failed to persist session %s: %v", sess.ID, err)
	}
}

func saveCart(db *gorm.DB, sessionID string, cart models.Cart) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var rec models.CartRecord
		if err := tx.Where("session_id = ?", sessionID).First(&rec).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			rec = models.CartRecord{SessionID: sessionID}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", rec.CartID).Delete(&models.CartLineRecord{}).Error; err != nil {
			return err
		}
		for _, line := range cart.Lines {
			lineRec := models.CartLineRecord{
				CartID:                    rec.CartID,
				ProductID:                 line.ProductID,
				ProductName:               line.Name,
				ProductImage:              line.ImageRef,
				ProductStock:              line.Stock,
				Price:                     line.Price,
				PriceWithTransferDiscount: line.PriceWithTransferDiscount,
				Units:                     line.Units,
				AddedAt:                   time.Now(),
			}
			if err := tx.Create(&lineRec).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("❌ Failed to persist cart for session %s: %v", sessionID, err)
	}
}

func loadSessions(db *gorm.DB) ([]models.SessionRecord, map[string]models.Cart, error) {
	var records []models.SessionRecord
	if err := db.Find(&records).Error; err != nil {
		return nil, nil, err
	}

	var carts []models.CartRecord
	if err := db.Preload("Lines").Find(&carts).Error; err != nil {
		return nil, nil, err
	}

	cartsBySession := make(map[string]models.Cart, len(carts))
	for _, rec := range carts {
		cart := models.Cart{}
		for _, line := range rec.Lines {
			cart.Lines = append(cart.Lines, models.CartLine{
				ProductID:                 line.ProductID,
				Name:                      line.ProductName,
				ImageRef:                  line.ProductImage,
				Stock:                     line.ProductStock,
				Price:                     line.Price,
				PriceWithTransferDiscount: line.PriceWithTransferDiscount,
				Units:                     line.Units,
			})
		}
		cartsBySession[rec.SessionID] = cart
	}
	return records, cartsBySession, nil
}

func deleteSession(db *gorm.DB, sessionID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var rec models.CartRecord
		if err := tx.Where("session_id = ?", sessionID).First(&rec).Error; err == nil {
			if err := tx.Where("cart_id = ?", rec.CartID).Delete(&models.CartLineRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&rec).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", sessionID).Delete(&models.SessionRecord{}).Error
	})
}

func staleSessionIDs(db *gorm.DB, cutoff time.Time) ([]string, error) {
	var ids []string
	err := db.Model(&models.SessionRecord{}).
		Where("updated_at < ?", cutoff).
		Pluck("id", &ids).Error
	return ids, err
}
