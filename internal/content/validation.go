package content

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sushihentaime/folio/internal/common"
)

var (
	ClockRX = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

	validate = newValidate()
)

func newValidate() *validator.Validate {
	v := validator.New()

	err := v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return ClockRX.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	v.RegisterStructValidation(validateMusicPost, MusicPost{})

	return v
}

func validateMusicPost(sl validator.StructLevel) {
	mp := sl.Current().Interface().(MusicPost)
	for _, c := range mp.Categories {
		if c != CategoryMusic {
			sl.ReportError(mp.Categories, "Categories", "Categories", "music_only", "")
			return
		}
	}
}

// Validate checks every record of s against the schema's closed enumerations
// and field constraints. It returns a common.ValidationError keyed by record
// path, e.g. "BlogPosts[2].Categories[0]".
func Validate(s *Store) error {
	if s == nil {
		return errors.New("nil store")
	}

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	v := common.NewValidator()
	for _, fe := range verrs {
		v.AddError(strings.TrimPrefix(fe.Namespace(), "Store."), message(fe))
	}

	return v.ValidationError()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be provided"
	case "min":
		return "must contain at least one value"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gte":
		return "must not be negative"
	case "clock":
		return "must be a clock time like 18:12 or 1:26:57"
	case "unique":
		return fmt.Sprintf("must have a unique %s", strings.ToLower(fe.Param()))
	case "music_only":
		return "must only contain music"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
