package services

// Services defined in this package:
// - StudentService: search, create, update and delete of student records,
//   composing the validator with the student store
