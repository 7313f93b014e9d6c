package pitch

import "github.com/jsphweid/engrave/model"

// order in which sharps (and reversed, flats) are added to a key signature
var sharpOrder = [7]int{3, 0, 4, 1, 5, 2, 6} // F C G D A E B
var flatOrder = [7]int{6, 2, 5, 1, 4, 0, 3}  // B E A D G C F

// KeyAccidental is the accidental a key signature applies to a letter.
// It is not octave aware.
func KeyAccidental(key *model.KeySignature, letter int) model.Accidental {
	if key == nil {
		return model.Natural
	}
	if key.Offset > 0 {
		for i := 0; i < int(key.Offset) && i < 7; i++ {
			if sharpOrder[i] == letter {
				return model.Sharp
			}
		}
	}
	if key.Offset < 0 {
		for i := 0; i < int(-key.Offset) && i < 7; i++ {
			if flatOrder[i] == letter {
				return model.Flat
			}
		}
	}
	return model.Natural
}

// KeyLetters lists the letters altered by a key signature in the order
// they are drawn.
func KeyLetters(key *model.KeySignature) ([]int, model.Accidental) {
	if key == nil || key.Offset == 0 {
		return nil, model.Natural
	}
	if key.Offset > 0 {
		n := int(key.Offset)
		if n > 7 {
			n = 7
		}
		return sharpOrder[:n], model.Sharp
	}
	n := int(-key.Offset)
	if n > 7 {
		n = 7
	}
	return flatOrder[:n], model.Flat
}
