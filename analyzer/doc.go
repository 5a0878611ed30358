// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package analyzer implements the constguard static analysis of C++ sources.
//
// # Overview
//
// constguard detects C++ local variables, parameters and data members that are
// never modified and could be declared const, as well as member functions that
// could be declared const or static.
//
// # Example
//
// Before:
//
//	class Account {
//	    int m_balance;
//	public:
//	    int balance() { return m_balance; }  // could be const
//	    int fee(int amount) { return amount / 100; }  // could be static
//	};
//
//	int total(Account& a) {
//	    int sum = a.balance();  // could be const
//	    return sum + a.fee(sum);
//	}
//
// After applying constguard's suggested fixes:
//
//	class Account {
//	    int m_balance;
//	public:
//	    int balance() const { return m_balance; }
//	    static int fee(int amount) { return amount / 100; }
//	};
//
//	int total(Account& a) {
//	    const int sum = a.balance();
//	    return sum + a.fee(sum);
//	}
//
// # Analysis
//
// Every function definition of a translation unit is examined once. A variable
// becomes a candidate when no examined scope modifies it; a modification through
// a reference binding also disqualifies the referenced object. A member function
// that modifies no data member and calls no non-const member function could be
// const; if it does not use its object at all it could be static.
//
// Only declarations in the main file are reported, unless headers are included.
// A NOLINT(constguard) or nolint:constguard comment suppresses a report.
package analyzer
