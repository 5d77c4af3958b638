package puzzle

import (
	"github.com/arloliu/puz/cipher"
	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/format"
)

// Lock scrambles the solution with key and stores the checksum of the plain
// solution. Locking a locked puzzle does nothing. Legacy headers carry the
// checksum in their reserved bytes, so every version can be locked.
func (p *Puzzle) Lock(key cipher.Key) error {
	if p.IsLocked() {
		return nil
	}

	scrambled, err := cipher.ScrambleSolution(p.Solution, p.Width, p.Height, key)
	if err != nil {
		return err
	}

	p.ScrambledChecksum = cipher.LockedChecksum(p.Solution, p.Width, p.Height, format.BlackSquare)
	p.Solution = scrambled
	p.State = format.SolutionLocked

	return nil
}

// Unlock restores the solution when key reproduces the stored checksum.
// A wrong key returns errs.ErrWrongUnlockKey and leaves the puzzle unchanged.
// Unlocking an unlocked puzzle does nothing.
func (p *Puzzle) Unlock(key cipher.Key) error {
	if !p.IsLocked() {
		return nil
	}

	plain, err := cipher.UnscrambleSolution(p.Solution, p.Width, p.Height, key)
	if err != nil {
		return err
	}
	if cipher.LockedChecksum(plain, p.Width, p.Height, format.BlackSquare) != p.ScrambledChecksum {
		return errs.ErrWrongUnlockKey
	}

	p.Solution = plain
	p.ScrambledChecksum = 0
	p.State = format.SolutionUnlocked

	return nil
}

// CheckAnswers reports whether answers, a row-major grid like Solution,
// is the correct solution. Locked puzzles are checked against the stored
// checksum, so no key is needed.
func (p *Puzzle) CheckAnswers(answers string) bool {
	if len(answers) != p.Cells() {
		return false
	}
	if !p.IsLocked() {
		return answers == p.Solution
	}

	return cipher.LockedChecksum(answers, p.Width, p.Height, format.BlackSquare) == p.ScrambledChecksum
}

// RecoverKey tries every key from 0000 to 9999 and returns the first one that
// unlocks the puzzle. The puzzle is not modified.
func (p *Puzzle) RecoverKey() (cipher.Key, error) {
	if !p.IsLocked() {
		return cipher.Key{}, errs.ErrWrongUnlockKey
	}

	for n := 0; n <= 9999; n++ {
		key := cipher.MustKey(n)
		plain, err := cipher.UnscrambleSolution(p.Solution, p.Width, p.Height, key)
		if err != nil {
			return cipher.Key{}, err
		}
		if cipher.LockedChecksum(plain, p.Width, p.Height, format.BlackSquare) == p.ScrambledChecksum {
			return key, nil
		}
	}

	return cipher.Key{}, errs.ErrWrongUnlockKey
}
