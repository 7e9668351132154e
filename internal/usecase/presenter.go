package usecase

import (
	"strconv"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// iconKeysForContact is the static icon key map served verbatim in the
// detail view. It is not localized.
var iconKeysForContact = map[string]string{
	"phone":     "phone",
	"website":   "website",
	"mail":      "mail",
	"location":  "location",
	"whatsapp":  "whatsapp",
	"instagram": "instagram",
	"facebook":  "facebook",
	"twitter":   "twitter",
	"pinterest": "pinterest",
}

// Presenter maps domain entities into response views, resolving localized
// text through the translation sets.
type Presenter struct {
	defaultLang string
	titler      cases.Caser
	logger      *zap.Logger
}

func NewPresenter(defaultLang string, logger *zap.Logger) *Presenter {
	return &Presenter{
		defaultLang: defaultLang,
		titler:      cases.Title(language.English),
		logger:      logger,
	}
}

func (pr *Presenter) ListItem(p *domain.Place, lang string, now time.Time) dto.PlaceListItem {
	item := dto.PlaceListItem{
		ID:                 p.ID,
		Name:               p.Translations.Resolve(lang, pr.defaultLang, "name", ""),
		Description:        p.Translations.Resolve(lang, pr.defaultLang, "description", ""),
		Category:           p.CategoryID,
		MainImage:          p.MainImage,
		Latitude:           formatCoordinate(p.Latitude),
		Longitude:          formatCoordinate(p.Longitude),
		WorkingHoursStatus: p.WorkingHoursStatus(now),
	}
	if p.Category != nil {
		item.CategoryName = p.Category.Name(lang, pr.defaultLang)
	}
	return item
}

func (pr *Presenter) Detail(
	p *domain.Place,
	lang string,
	now time.Time,
	isLiked bool,
	expectationDefs map[string]*domain.ExpectationDefinition,
	sortTagDefs map[string]*domain.SortTagDefinition,
) dto.PlaceDetail {
	detail := dto.PlaceDetail{
		ID:              p.ID,
		Name:            p.Translations.Resolve(lang, pr.defaultLang, "name", ""),
		Description:     p.Translations.Resolve(lang, pr.defaultLang, "description", ""),
		AllTranslations: p.Translations,
		Address:         p.Address,
		Location: dto.Location{
			Latitude:  formatCoordinate(p.Latitude),
			Longitude: formatCoordinate(p.Longitude),
		},
		MainImage:          p.MainImage,
		Images:             make([]dto.PlaceImageView, 0, len(p.Images)),
		WorkingHoursStatus: p.WorkingHoursStatus(now),
		OpenTimes:          make([]dto.OpeningHourView, 0, len(p.OpenTimes)),
		ContactInformation: dto.ContactInformation{
			Phone:    p.Phone,
			Website:  p.Website,
			Email:    p.Email,
			MapLink:  p.MapLink,
			Whatsapp: p.Whatsapp,
		},
		SocialMedias: dto.SocialMedias{
			Instagram: p.Instagram,
			Twitter:   p.Twitter,
			Facebook:  p.Facebook,
			Pinterest: p.Pinterest,
		},
		IconKeysForContact: iconKeysForContact,
		UserInteraction:    dto.UserInteraction{IsLiked: isLiked},
	}
	if p.Category != nil {
		detail.Type = p.Category.Name(lang, pr.defaultLang)
	}

	for _, img := range p.Images {
		detail.Images = append(detail.Images, dto.PlaceImageView{
			ImageURL: img.ImageURL,
			Order:    img.DisplayOrder,
		})
	}
	for _, h := range p.OpenTimes {
		detail.OpenTimes = append(detail.OpenTimes, dto.OpeningHourView{
			Day:   h.DayName(),
			Open:  h.Open,
			Close: h.Close,
		})
	}

	detail.Expectations = pr.resolveTags(p, lang, domain.ExpectationFields, func(key string) (*string, domain.TranslationSet, bool) {
		def, ok := expectationDefs[key]
		if !ok {
			return nil, nil, false
		}
		return def.IconKey, def.Translations, true
	})
	detail.SortingTags = pr.resolveTags(p, lang, domain.SortingTagFields, func(key string) (*string, domain.TranslationSet, bool) {
		def, ok := sortTagDefs[key]
		if !ok {
			return nil, nil, false
		}
		return def.IconKey, def.Translations, true
	})

	return detail
}

// resolveTags emits one entry per true flag, in the fixed table order.
// A missing definition degrades to a title-cased key with no icon.
func (pr *Presenter) resolveTags(
	p *domain.Place,
	lang string,
	table []domain.TagField,
	lookup func(key string) (*string, domain.TranslationSet, bool),
) []dto.ResolvedTag {
	tags := make([]dto.ResolvedTag, 0, len(table))
	for _, f := range table {
		if !f.Value(p) {
			continue
		}
		iconKey, translations, ok := lookup(f.Key)
		if !ok {
			pr.logger.Warn("Tag definition not found, using fallback label",
				zap.String("key", f.Key))
			tags = append(tags, dto.ResolvedTag{
				Key:   f.Key,
				Label: pr.titler.String(f.Key),
			})
			continue
		}
		tags = append(tags, dto.ResolvedTag{
			Key:     f.Key,
			Label:   translations.Resolve(lang, pr.defaultLang, "name", pr.titler.String(f.Key)),
			IconKey: iconKey,
		})
	}
	return tags
}

func formatCoordinate(v *float64) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatFloat(*v, 'f', 6, 64)
	return &s
}
