package mssql

// fetchEmployeesQuery retrieves one row per employee pay or deduction line:
// the identity keys (employee code, SSN, clock number), name, gross-to-net
// classification, type code, temporary rate, and the distributed department
// with the home department as fallback. The ORDER BY makes directory order
// deterministic so ambiguous-match candidate lists are reproducible.
const fetchEmployeesQuery = `
SELECT
    PM.Employee_Cd AS employee_id,
    PM.Ssn_Nbr AS ssn,
    PU.UserDefined2_Txt AS clock_number,

    PM.First_Name_Txt AS first_name,
    PM.Last_Name_Txt AS last_name,

    CASE
        WHEN PC.Pay_Cd IS NOT NULL THEN 1 -- earnings
        WHEN CDC.Deduction_Cd IS NOT NULL AND PDD.Deduction_Amt > 0 THEN 3 -- employee deduction
        WHEN CDC.Deduction_Cd IS NOT NULL AND CDC.CompanyPremium_Amt > 0 THEN 4 -- employer deduction
        ELSE NULL
    END AS gross_to_net_code,

    COALESCE(PC.Pay_Cd, CDC.Deduction_Cd) AS type_code,

    CASE
        WHEN PC.Pay_Cd IS NOT NULL THEN PPD.Current_Units_Amt
        ELSE NULL
    END AS temporary_rate,

    COALESCE(PPLD.Department_Cd, PM.Department_Cd) AS home_department
FROM
    HRPremier.dbo.Person_Main PM
    LEFT JOIN HRPremier.dbo.Person_UserDefined PU ON PM.Employee_Cd = PU.Employee_Cd
    LEFT JOIN HRPremier.dbo.Person_PayData PPD ON PM.Employee_Cd = PPD.Employee_Cd
    LEFT JOIN HRPremier.dbo.Company_PayCodes PC ON PPD.Pay_Cd = PC.Pay_Cd AND PM.Company_Cd = PC.Company_Cd
    LEFT JOIN HRPremier.dbo.Person_DeductionData PDD ON PM.Employee_Cd = PDD.Employee_Cd
    LEFT JOIN HRPremier.dbo.Company_DeductionCodes CDC ON PDD.Deduction_Cd = CDC.Deduction_Cd AND PM.Company_Cd = CDC.Company_Cd
    LEFT JOIN HRPremier.dbo.Person_PayrollLaborDistribution PPLD ON PM.Employee_Cd = PPLD.Employee_Cd AND PPLD.Active_Ind = 1
WHERE
    PM.CompanyId = @p1
ORDER BY
    PM.Employee_Cd,
    gross_to_net_code,
    type_code;
`
